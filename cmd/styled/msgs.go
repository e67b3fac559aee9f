package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Preview and diagnose ANSI terminal styling"
	MsgDemoShort       = "Render the color and attribute palette"
	MsgDemoLong        = "Demo renders the 8x8 foreground/background color matrix and each text attribute, using whatever styling the current policy allows."
	MsgDoctorShort     = "Explain the current styling decision"
	MsgDoctorLong      = "Doctor prints the inputs to the styling policy (CLICOLOR, CLICOLOR_FORCE, terminal detection, color profile) and the resulting decision."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor   = "When to emit ANSI codes: auto, always or never"

	// Error messages
	MsgErrColorMode = "invalid --color value %q (want auto, always or never)"
)
