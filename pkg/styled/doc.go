// Package styled wraps arbitrary values with ANSI SGR escape sequences for
// terminal output.
//
// A wrapper is built with New and a chain of configuration calls, then handed
// to any fmt verb; the escape codes are emitted around the value's own
// rendering only when styling is enabled:
//
//	fmt.Printf("status: %s\n", styled.New("ok").Green().Bold())
//
// Whether codes are emitted by default is a process-wide policy derived from
// the CLICOLOR and CLICOLOR_FORCE environment variables and from whether
// stdout is a terminal; see ShouldStyle. Individual wrappers can override the
// policy with ForceStyling.
package styled
