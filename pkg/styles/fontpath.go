package styles

import (
	"strings"

	"github.com/flopp/go-findfont"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
)

// ResolveFontPath locates a font file for the config's font family on the
// local system, walking the fallback list in order. Raster sinks need an
// actual font file; vector sinks embed the family name and let the viewer
// resolve it.
//
// Returns FONT_NOT_FOUND when no family in the stack resolves. Generic CSS
// names ("serif", "sans-serif") are skipped since they only mean something
// to a browser.
func ResolveFontPath(cfg Config) (string, error) {
	for _, family := range cfg.Fonts.Family {
		switch family {
		case "serif", "sans-serif", "monospace":
			continue
		}
		for _, name := range fontFileCandidates(family) {
			if path, err := findfont.Find(name); err == nil {
				return path, nil
			}
		}
	}
	return "", pfgerrors.New(pfgerrors.ErrCodeFontNotFound,
		"no font file found for families %v", cfg.Fonts.Family)
}

// fontFileCandidates lists the file names a family is commonly shipped
// under: the family as-is, with spaces stripped ("LiberationSerif"), the
// stripped name with a -Regular suffix, and the Windows-style short name
// ("Times New Roman" ships as times.ttf).
func fontFileCandidates(family string) []string {
	names := []string{family + ".ttf"}
	if compact := strings.ReplaceAll(family, " ", ""); compact != family {
		names = append(names, compact+".ttf", compact+"-Regular.ttf")
	} else {
		names = append(names, family+"-Regular.ttf")
	}
	if first, _, ok := strings.Cut(family, " "); ok {
		names = append(names, strings.ToLower(first)+".ttf")
	}
	return names
}
