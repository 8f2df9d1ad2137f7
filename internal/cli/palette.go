package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jetplot/jetplot/pkg/colors"
	"github.com/jetplot/jetplot/pkg/errors"
)

// paletteCommand creates the palette command for inspecting the color table.
func (c *CLI) paletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Inspect the color table and colormaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			printPaletteList()
			return nil
		},
	}

	cmd.AddCommand(c.paletteListCommand())
	cmd.AddCommand(c.paletteShowCommand())
	cmd.AddCommand(c.paletteCmapCommand())
	cmd.AddCommand(c.paletteBrowseCommand())

	return cmd
}

func (c *CLI) paletteListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every hue with its nine shades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printPaletteList()
			return nil
		},
	}
}

func printPaletteList() {
	fmt.Println(StyleTitle.Render("Hues"))
	for _, name := range colors.Names() {
		hue, _ := colors.Lookup(name)
		fmt.Printf("  %-8s %s\n", name, swatch(hue[:]))
	}
	fmt.Println()
	fmt.Println(StyleTitle.Render("Groups"))
	for _, name := range []string{"rainbow", "bright", "dark"} {
		g, _ := colors.Group(name)
		fmt.Printf("  %-8s %s\n", name, swatch(g))
	}
}

func (c *CLI) paletteShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "show HUE",
		Short:     "Show the shades of one hue",
		Args:      cobra.ExactArgs(1),
		ValidArgs: colors.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			hue, ok := colors.Lookup(args[0])
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "unknown hue %q", args[0])
			}
			fmt.Println(shadeTable(hue))
			return nil
		},
	}
}

// shadeTable renders one hue as a table of shade, hex value and swatch.
func shadeTable(hue colors.Color) string {
	rows := make([][]string, colors.Shades)
	for i := 1; i <= colors.Shades; i++ {
		h := hue.Shade(i)
		rows[i-1] = []string{"v" + strconv.Itoa(i), h, swatch([]string{h, h, h})}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Shade", "Hex", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func (c *CLI) paletteCmapCommand() *cobra.Command {
	var (
		n          int
		vmin, vmax float64
	)

	cmd := &cobra.Command{
		Use:   "cmap NAME",
		Short: "Sample evenly spaced colors from a colormap",
		Long: `Sample N evenly spaced colors on [vmin, vmax] of a colormap.

Colormaps are the hue names (light to dark) and the perceptual maps:
blue-red, blue-tan, green-purple, green-red, purple-orange, kindlmann,
kindlmann-ext, blackbody and blackbody-ext.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: colors.Colormaps(),
		RunE: func(cmd *cobra.Command, args []string) error {
			hexes, err := sampleHex(args[0], n, vmin, vmax)
			if err != nil {
				return err
			}
			for _, h := range hexes {
				fmt.Printf("%s %s\n", swatch([]string{h}), h)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", 5, "number of colors")
	cmd.Flags().Float64Var(&vmin, "vmin", 0, "start of the sampled range, in [0, 1]")
	cmd.Flags().Float64Var(&vmax, "vmax", 1, "end of the sampled range, in [0, 1]")
	return cmd
}

// sampleHex samples a colormap and formats the colors as hex.
func sampleHex(name string, n int, vmin, vmax float64) ([]string, error) {
	cs, err := colors.CmapColors(name, n, vmin, vmax)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(cs))
	for i, col := range cs {
		out[i] = colors.Hex(col)
	}
	return out, nil
}

func (c *CLI) paletteBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse colormaps interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := tea.NewProgram(newPaletteModel(colors.Colormaps())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(paletteModel); ok && m.selected != "" {
				fmt.Println(m.selected)
			}
			return nil
		},
	}
}

// =============================================================================
// paletteModel - Interactive colormap browser
// =============================================================================

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

const browseSamples = 24

// paletteModel lists colormaps with a strip sampled from each.
type paletteModel struct {
	names    []string
	strips   map[string]string
	cursor   int
	offset   int
	height   int
	selected string
}

func newPaletteModel(names []string) paletteModel {
	strips := make(map[string]string, len(names))
	for _, n := range names {
		if hexes, err := sampleHex(n, browseSamples, 0, 1); err == nil {
			strips[n] = swatch(hexes)
		}
	}
	return paletteModel{names: names, strips: strips, height: 15}
}

func (m paletteModel) Init() tea.Cmd { return nil }

func (m paletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.names[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m paletteModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Colormaps"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ print name  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.names))
	for i := m.offset; i < end; i++ {
		name := m.names[i]
		cursor, style := "  ", listNormalStyle
		if i == m.cursor {
			cursor, style = "▸ ", listSelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-14s ", cursor, name)))
		b.WriteString(m.strips[name])
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.names))))
	return b.String()
}
