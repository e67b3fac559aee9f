package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/styled/pkg/styled"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: MsgDoctorShort,
		Long:  MsgDoctorLong,
		Run: func(cmd *cobra.Command, args []string) {
			renderDoctor(cmd.OutOrStdout())
		},
	}
}

func renderDoctor(out io.Writer) {
	fmt.Fprintln(out, "Styling decision inputs:")
	fmt.Fprintf(out, "  CLICOLOR:        %s\n", describeEnv("CLICOLOR"))
	fmt.Fprintf(out, "  CLICOLOR_FORCE:  %s\n", describeEnv("CLICOLOR_FORCE"))
	fmt.Fprintf(out, "  stdout terminal: %t\n", stdoutIsTerminal())
	fmt.Fprintf(out, "  color profile:   %s\n", profileName(termenv.ColorProfile()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Styling enabled: %s\n", describeDecision(styled.ShouldStyle()))
}

func describeEnv(name string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "(unset, reads as \"0\")"
	}
	return fmt.Sprintf("%q", v)
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.Ascii:
		return "no color (ascii)"
	case termenv.ANSI:
		return "16 colors (ansi)"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.TrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// describeDecision renders the verdict through the library itself, so the
// answer demonstrates the decision it reports.
func describeDecision(on bool) string {
	if on {
		return styled.New("yes").Green().Bold().String()
	}
	return styled.New("no").String()
}
