package styled

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

var (
	enableStyling atomic.Bool
	policyOnce    sync.Once
)

// isTerminal reports whether the file is connected to an interactive
// terminal. Held in a variable so tests can substitute it.
var isTerminal = func(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// supportsStyling computes the initial policy from the environment. An unset
// variable reads as "0"; any other value counts as truthy, so there is no
// parse failure mode.
func supportsStyling() bool {
	clicolor := os.Getenv("CLICOLOR")
	if clicolor == "" {
		clicolor = "0"
	}
	force := os.Getenv("CLICOLOR_FORCE")
	if force == "" {
		force = "0"
	}
	return (clicolor != "0" && isTerminal(os.Stdout)) || force != "0"
}

func initPolicy() {
	enableStyling.Store(supportsStyling())
}

// ShouldStyle reports whether ANSI escape codes are emitted by default.
//
// On first use the policy is derived from the CLICOLOR and CLICOLOR_FORCE
// environment variables and from whether stdout is a terminal: styling is on
// when CLICOLOR is set truthy and stdout is a terminal, or unconditionally
// when CLICOLOR_FORCE is set truthy. Styled wrappers consult this on every
// render unless overridden per instance with ForceStyling.
func ShouldStyle() bool {
	policyOnce.Do(initPolicy)
	return enableStyling.Load()
}

// SetShouldStyle overrides the styling policy for the rest of the process.
// Concurrent renders may observe the old value briefly; the flag is a
// cosmetic toggle and is deliberately not synchronized with renders.
func SetShouldStyle(v bool) {
	// Run the lazy init first so a racing first read cannot clobber the
	// explicit override.
	policyOnce.Do(initPolicy)
	enableStyling.Store(v)
}
