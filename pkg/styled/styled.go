package styled

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Styled decorates a value with ANSI styling for terminal output. It is a
// value type: every builder method returns a reconfigured copy, so a
// constructed wrapper is never mutated and is safe to render concurrently.
//
// Styled implements fmt.Formatter and forwards every verb, flag, width and
// precision to the wrapped value unchanged, so %d, %q, %x, %+v and friends
// all work and are wrapped identically.
type Styled struct {
	fg       Color
	bg       Color
	hasFG    bool
	hasBG    bool
	attrs    uint8 // bitmask indexed by Attribute
	force    bool
	hasForce bool
	value    any
}

// New wraps a value for styling. The wrapper starts with no colors, no
// attributes and no force override; rendering it is then byte-identical to
// rendering the value directly.
func New(value any) Styled {
	return Styled{value: value}
}

// ForceStyling turns styling on or off for this wrapper regardless of the
// global policy. Calling it again replaces the prior override.
func (s Styled) ForceStyling(on bool) Styled {
	s.force = on
	s.hasForce = true
	return s
}

// Fg sets the foreground color, replacing any previous one.
func (s Styled) Fg(c Color) Styled {
	s.fg = c
	s.hasFG = true
	return s
}

// Bg sets the background color, replacing any previous one.
func (s Styled) Bg(c Color) Styled {
	s.bg = c
	s.hasBG = true
	return s
}

// Attr adds a text attribute. Adding an attribute twice is a no-op; emission
// order is fixed by the attribute's SGR code, not by insertion order.
func (s Styled) Attr(a Attribute) Styled {
	s.attrs |= 1 << uint(a)
	return s
}

// Foreground shortcuts.

func (s Styled) Black() Styled   { return s.Fg(Black) }
func (s Styled) Red() Styled     { return s.Fg(Red) }
func (s Styled) Green() Styled   { return s.Fg(Green) }
func (s Styled) Yellow() Styled  { return s.Fg(Yellow) }
func (s Styled) Blue() Styled    { return s.Fg(Blue) }
func (s Styled) Magenta() Styled { return s.Fg(Magenta) }
func (s Styled) Cyan() Styled    { return s.Fg(Cyan) }
func (s Styled) White() Styled   { return s.Fg(White) }

// Background shortcuts.

func (s Styled) OnBlack() Styled   { return s.Bg(Black) }
func (s Styled) OnRed() Styled     { return s.Bg(Red) }
func (s Styled) OnGreen() Styled   { return s.Bg(Green) }
func (s Styled) OnYellow() Styled  { return s.Bg(Yellow) }
func (s Styled) OnBlue() Styled    { return s.Bg(Blue) }
func (s Styled) OnMagenta() Styled { return s.Bg(Magenta) }
func (s Styled) OnCyan() Styled    { return s.Bg(Cyan) }
func (s Styled) OnWhite() Styled   { return s.Bg(White) }

// Attribute shortcuts.

func (s Styled) Bold() Styled       { return s.Attr(Bold) }
func (s Styled) Dim() Styled        { return s.Attr(Dim) }
func (s Styled) Underlined() Styled { return s.Attr(Underlined) }
func (s Styled) Blink() Styled      { return s.Attr(Blink) }
func (s Styled) Reverse() Styled    { return s.Attr(Reverse) }
func (s Styled) Hidden() Styled     { return s.Attr(Hidden) }

// shouldEmit resolves the effective styling decision: the per-wrapper
// override wins, otherwise the global policy decides.
func (s Styled) shouldEmit() bool {
	if s.hasForce {
		return s.force
	}
	return ShouldStyle()
}

// Format implements fmt.Formatter. It emits the SGR prologue (foreground,
// then background, then attributes in ascending code order), renders the
// wrapped value under the exact verb, flags, width and precision that were
// requested, and closes with a reset iff any code was emitted. Write errors
// propagate through the fmt state to the caller's Fprintf as usual.
func (s Styled) Format(f fmt.State, verb rune) {
	reset := false
	if s.shouldEmit() {
		if s.hasFG {
			fmt.Fprintf(f, "\x1b[%dm", 30+s.fg.ansiNum())
			reset = true
		}
		if s.hasBG {
			fmt.Fprintf(f, "\x1b[%dm", 40+s.bg.ansiNum())
			reset = true
		}
		for a := Bold; a <= Hidden; a++ {
			if s.attrs&(1<<uint(a)) != 0 {
				fmt.Fprintf(f, "\x1b[%dm", a.ansiNum())
				reset = true
			}
		}
	}
	fmt.Fprintf(f, directive(f, verb), s.value)
	if reset {
		io.WriteString(f, "\x1b[0m")
	}
}

// String renders the wrapper under the default %v verb.
func (s Styled) String() string {
	return fmt.Sprintf("%v", s)
}

// directive rebuilds the format directive the caller used, so the wrapped
// value sees the identical rendering mode.
func directive(f fmt.State, verb rune) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, flag := range "-+# 0" {
		if f.Flag(int(flag)) {
			b.WriteRune(flag)
		}
	}
	if w, ok := f.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	if p, ok := f.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteRune(verb)
	return b.String()
}
