package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	pfgerrors "github.com/figtools/pubfig/pkg/errors"
	"github.com/figtools/pubfig/pkg/page"
	"github.com/figtools/pubfig/pkg/pipeline"
	"github.com/figtools/pubfig/pkg/styles"
	"github.com/figtools/pubfig/pkg/unit"
)

// fileConfig is the TOML config file schema. All fields are optional;
// anything unset falls back to the pipeline defaults.
//
// Example ~/.config/pubfig/config.toml:
//
//	unit = "mm"
//	style = "minimal"
//	palette = ["#1b9e77", "#d95f02", "#7570b3"]
//
//	[fonts]
//	family = ["Libertinus Serif", "serif"]
//	small = 8.0
//	medium = 10.0
//	large = 12.0
//
//	[page.thesis]
//	width = 170.0
//	height = 240.0
//	unit = "mm"
//	margin = { top = 20.0, bottom = 20.0, left = 25.0, right = 20.0 }
type fileConfig struct {
	Unit    string                `toml:"unit"`
	Style   string                `toml:"style"`
	Palette []string              `toml:"palette"`
	Fonts   *fontConfig           `toml:"fonts"`
	Pages   map[string]pageConfig `toml:"page"`
}

// fontConfig overrides the default font stack and sizes (in points).
type fontConfig struct {
	Family []string `toml:"family"`
	Small  float64  `toml:"small"`
	Medium float64  `toml:"medium"`
	Large  float64  `toml:"large"`
}

// pageConfig defines a custom page preset.
type pageConfig struct {
	Width  float64      `toml:"width"`
	Height float64      `toml:"height"`
	Unit   string       `toml:"unit"`
	Margin marginConfig `toml:"margin"`
}

// marginConfig holds the four margins in the page's unit.
type marginConfig struct {
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
}

// loadConfig reads the TOML config from path, or from the XDG default
// location when path is empty. A missing file is not an error: commands
// work without any configuration.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return nil, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, pfgerrors.Wrap(pfgerrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, nil
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, pfgerrors.Wrap(pfgerrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return &cfg, nil
}

// apply merges the config into opts, filling only fields the command-line
// flags left unset. Flags always win over the config file.
func (c *fileConfig) apply(opts *pipeline.Options) error {
	if c == nil {
		return nil
	}
	if opts.Unit == "" {
		opts.Unit = c.Unit
	}
	if opts.Style == "" {
		opts.Style = c.Style
	}
	if opts.Config == nil {
		if sc := c.styleConfig(); sc != nil {
			opts.Config = sc
		}
	}

	// A preset name matching a config-defined page resolves to that page.
	if opts.Page == nil && opts.Preset != "" {
		if pc, ok := c.Pages[opts.Preset]; ok {
			p, err := pc.page()
			if err != nil {
				return err
			}
			opts.Page = &p
			opts.Preset = ""
		}
	}
	return nil
}

// styleConfig builds a styles.Config from the font and palette overrides.
// Returns nil when the config carries no style overrides.
func (c *fileConfig) styleConfig() *styles.Config {
	if c.Fonts == nil && len(c.Palette) == 0 {
		return nil
	}
	sc := styles.Default()
	if len(c.Palette) > 0 {
		sc.Palette = c.Palette
	}
	if f := c.Fonts; f != nil {
		if len(f.Family) > 0 {
			sc.Fonts.Family = f.Family
		}
		if f.Small > 0 {
			sc.Fonts.Small = f.Small
		}
		if f.Medium > 0 {
			sc.Fonts.Medium = f.Medium
		}
		if f.Large > 0 {
			sc.Fonts.Large = f.Large
		}
	}
	return &sc
}

// page converts a config-defined preset into a validated page.
func (pc pageConfig) page() (page.Page, error) {
	u := unit.Millimeter
	if pc.Unit != "" {
		parsed, err := unit.Parse(pc.Unit)
		if err != nil {
			return page.Page{}, err
		}
		u = parsed
	}
	p := page.Page{
		Width:  pc.Width,
		Height: pc.Height,
		Margin: page.Margin{
			Top:    pc.Margin.Top,
			Bottom: pc.Margin.Bottom,
			Left:   pc.Margin.Left,
			Right:  pc.Margin.Right,
		},
		Unit: u,
	}
	if err := p.Validate(); err != nil {
		return page.Page{}, err
	}
	return p, nil
}
