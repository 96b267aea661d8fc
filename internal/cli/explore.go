package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/figtools/pubfig/pkg/figure"
	"github.com/figtools/pubfig/pkg/page"
)

// exploreCommand creates the explore command for interactive sizing.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Interactively explore grid and scale parameters",
		Long: `Interactively explore grid and scale parameters.

Adjust rows, columns, scale, and the page preset with the keyboard and watch
the computed figure dimensions update live. Useful for finding a layout that
fits before committing to a render.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newExploreModel()
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("explore: %w", err)
			}
			if em, ok := final.(exploreModel); ok && em.layout != nil {
				printExploreResult(em)
			}
			return nil
		},
	}
}

// exploreModel is the bubbletea model for the parameter explorer.
type exploreModel struct {
	presets []string
	preset  int
	rows    int
	cols    int
	scale   float64
	square  bool

	layout *figure.Layout
	err    error
}

func newExploreModel() exploreModel {
	m := exploreModel{
		presets: page.PresetNames(),
		rows:    2,
		cols:    2,
		scale:   1.0,
	}
	m.recompute()
	return m
}

// recompute updates the layout for the current parameters.
func (m *exploreModel) recompute() {
	p, err := page.Preset(m.presets[m.preset])
	if err != nil {
		m.layout, m.err = nil, err
		return
	}
	opts := []figure.Option{figure.WithScale(m.scale)}
	if m.square {
		opts = append(opts, figure.WithSquareCells())
	}
	m.layout, m.err = figure.Compute(p, figure.Grid{Rows: m.rows, Cols: m.cols}, opts...)
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc", "enter":
		return m, tea.Quit
	case "up", "k":
		m.rows++
	case "down", "j":
		if m.rows > 1 {
			m.rows--
		}
	case "right", "l":
		m.cols++
	case "left", "h":
		if m.cols > 1 {
			m.cols--
		}
	case "+", "=":
		if m.scale < 1.0 {
			m.scale += 0.05
			if m.scale > 1.0 {
				m.scale = 1.0
			}
		}
	case "-", "_":
		if m.scale > 0.1 {
			m.scale -= 0.05
		}
	case "p":
		m.preset = (m.preset + 1) % len(m.presets)
	case "a":
		m.square = !m.square
	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("pubfig explore"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ rows  ←/→ cols  +/- scale  p page  a square cells  ⏎ done"))
	b.WriteString("\n\n")

	square := "off"
	if m.square {
		square = "on"
	}
	b.WriteString(exploreLine("page", m.presets[m.preset]))
	b.WriteString(exploreLine("grid", fmt.Sprintf("%d × %d", m.rows, m.cols)))
	b.WriteString(exploreLine("scale", fmt.Sprintf("%.2f", m.scale)))
	b.WriteString(exploreLine("square", square))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("  %s", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	l := m.layout
	body := l.Page.Body()
	b.WriteString(exploreLine("figure", StyleNumber.Render(
		fmt.Sprintf("%.4g × %.4g %s", l.Figure.Width, l.Figure.Height, l.Figure.Unit))))
	if len(l.Cells) > 0 {
		cell := l.Cells[0]
		b.WriteString(exploreLine("panel", fmt.Sprintf("%.4g × %.4g %s", cell.Width, cell.Height, l.Figure.Unit)))
	}
	b.WriteString("\n")
	b.WriteString(exploreBar("width", l.Figure.Width, body.Width))
	b.WriteString(exploreBar("height", l.Figure.Height, body.Height))

	return b.String()
}

// exploreLine formats one labeled value for the explorer view.
func exploreLine(label, value string) string {
	return fmt.Sprintf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%-7s", label)), StyleValue.Render(value))
}

// exploreBar renders how much of the content dimension the figure uses.
func exploreBar(label string, used, avail float64) string {
	const width = 24
	frac := 0.0
	if avail > 0 {
		frac = used / avail
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*width + 0.5)
	bar := StyleHighlight.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("  %s %s %s\n",
		StyleDim.Render(fmt.Sprintf("%-7s", label)), bar,
		StyleDim.Render(fmt.Sprintf("%3.0f%% of content", frac*100)))
}

// printExploreResult echoes the final parameters so they can be reused
// in a render command.
func printExploreResult(m exploreModel) {
	l := m.layout
	printSuccess("Figure %.4g × %.4g %s", l.Figure.Width, l.Figure.Height, l.Figure.Unit)
	cmd := fmt.Sprintf("pubfig render %d %d --page %s --scale %.2f", m.rows, m.cols, m.presets[m.preset], m.scale)
	if m.square {
		cmd += " --square"
	}
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(cmd))
}
