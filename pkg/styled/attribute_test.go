package styled_test

import (
	"testing"

	"github.com/arthur-debert/styled/pkg/styled"
	"github.com/stretchr/testify/assert"
)

func TestAttributeString(t *testing.T) {
	tests := []struct {
		attr styled.Attribute
		want string
	}{
		{styled.Bold, "bold"},
		{styled.Dim, "dim"},
		{styled.Underlined, "underlined"},
		{styled.Blink, "blink"},
		{styled.Reverse, "reverse"},
		{styled.Hidden, "hidden"},
		{styled.Attribute(42), "attribute(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.attr.String())
	}
}
