package styled

import "fmt"

// Color is one of the eight base ANSI colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// ansiNum returns the base SGR code offset: foreground is 30+ansiNum,
// background is 40+ansiNum.
func (c Color) ansiNum() int {
	return int(c)
}
