package styles

import (
	"bytes"
	"encoding/xml"
	"strings"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
)

// EscapeXML escapes s for safe embedding in SVG text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// ByName returns the style implementation for a CLI-facing name.
// Returns INVALID_STYLE for unknown names.
func ByName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return Classic{}, nil
	case "minimal":
		return Minimal{}, nil
	}
	return nil, pfgerrors.New(pfgerrors.ErrCodeInvalidStyle, "unknown style %q (want classic or minimal)", name)
}

// Names returns the CLI-facing style names.
func Names() []string { return []string{"classic", "minimal"} }
