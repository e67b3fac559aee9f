package main

import (
	"fmt"
	"io"

	"github.com/arthur-debert/styled/pkg/styled"
	"github.com/spf13/cobra"
)

var demoColors = []styled.Color{
	styled.Black, styled.Red, styled.Green, styled.Yellow,
	styled.Blue, styled.Magenta, styled.Cyan, styled.White,
}

var demoAttrs = []styled.Attribute{
	styled.Bold, styled.Dim, styled.Underlined,
	styled.Blink, styled.Reverse, styled.Hidden,
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Long:  MsgDemoLong,
		Run: func(cmd *cobra.Command, args []string) {
			renderDemo(cmd.OutOrStdout())
		},
	}
}

func renderDemo(out io.Writer) {
	fmt.Fprintln(out, "Foreground on background:")
	fmt.Fprintf(out, "%11s", "")
	for _, bg := range demoColors {
		fmt.Fprintf(out, "%-7.7s ", bg)
	}
	fmt.Fprintln(out)
	for _, fg := range demoColors {
		fmt.Fprintf(out, "%10s ", fg)
		for _, bg := range demoColors {
			fmt.Fprintf(out, "%s ", styled.New("  ab   ").Fg(fg).Bg(bg))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Attributes:")
	for _, attr := range demoAttrs {
		fmt.Fprintf(out, "  %-10s %s\n", attr, styled.New("the quick brown fox").Attr(attr))
	}
}
