package styled

import "fmt"

// Attribute is an ANSI text attribute such as bold or underlined.
type Attribute int

const (
	Bold Attribute = iota
	Dim
	Underlined
	Blink
	Reverse
	Hidden
)

// attrCodes maps each Attribute to its SGR code. Declaration order is
// ascending code order, which fixes the emission order of attribute sets.
var attrCodes = [...]int{
	Bold:       1,
	Dim:        2,
	Underlined: 4,
	Blink:      5,
	Reverse:    7,
	Hidden:     8,
}

// String returns the lowercase attribute name.
func (a Attribute) String() string {
	switch a {
	case Bold:
		return "bold"
	case Dim:
		return "dim"
	case Underlined:
		return "underlined"
	case Blink:
		return "blink"
	case Reverse:
		return "reverse"
	case Hidden:
		return "hidden"
	default:
		return fmt.Sprintf("attribute(%d)", int(a))
	}
}

// ansiNum returns the attribute's SGR code.
func (a Attribute) ansiNum() int {
	return attrCodes[a]
}
