package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/palette"
	"github.com/tinct-cli/tinct/style"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/util"
)

const swatchWidth = 4

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON document")
	showCmd.Flags().BoolP("preview", "p", false, "Render a sample view with the theme styles")
	showCmd.MarkFlagsMutuallyExclusive("json", "preview")
	showCmd.SetOut(os.Stdout)
}

// showCmd renders the resolved palette.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display every role and custom color of the resolved palette",
	Run: func(cmd *cobra.Command, args []string) {
		t, err := loadTheme()
		handleErr(err)

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(encodePalette(cmd.OutOrStdout(), t.Palette))
		case lo.Must(cmd.Flags().GetBool("preview")):
			cmd.Println(renderPreview(t))
		default:
			handleErr(renderPalette(cmd.OutOrStdout(), t.Palette))
		}
	},
}

// nameWidth sizes the name column to the terminal.
func nameWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return 24
	}
	return util.Max(8, util.Min(24, width/3))
}

func renderName(name string, depth, width int) string {
	indent := strings.Repeat("  ", depth)
	cell := truncate.StringWithTail(indent+name, uint(width), "…")
	return padding.String(cell, uint(width))
}

func renderPalette(w io.Writer, p *palette.Palette) error {
	width := nameWidth()

	for _, r := range palette.Roles() {
		c := p.Role(r)
		if _, err := fmt.Fprintf(w, "%s %s %s %s %s\n",
			icon.Get(icon.Role),
			renderName(r.String(), 0, width),
			style.Swatch(c, swatchWidth),
			c,
			style.Faint(r.Alias()),
		); err != nil {
			return err
		}
	}

	names := p.CustomNames()
	if len(names) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	custom := palette.Namespace{}
	for _, name := range names {
		custom[name] = p.CustomNode(name).MustGet()
	}
	return renderNamespace(w, custom, 0, width)
}

func renderNamespace(w io.Writer, ns palette.Namespace, depth, width int) error {
	for _, name := range ns.Keys() {
		node := ns[name]

		if c, ok := node.Color().Get(); ok {
			if _, err := fmt.Fprintf(w, "%s %s %s %s\n",
				icon.Get(icon.Color),
				renderName(name, depth, width),
				style.Swatch(c, swatchWidth),
				c,
			); err != nil {
				return err
			}
			continue
		}

		children := node.Namespace().MustGet()
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			icon.Get(icon.Namespace),
			style.Bold(renderName(name, depth, width)),
			style.Faint(util.Quantify(len(children), "entry", "entries")),
		); err != nil {
			return err
		}
		if err := renderNamespace(w, children, depth+1, width); err != nil {
			return err
		}
	}
	return nil
}

// paletteDocument is the JSON shape of a palette.
type paletteDocument struct {
	Roles  map[string]string `json:"roles"`
	Custom map[string]any    `json:"custom"`
}

func encodePalette(w io.Writer, p *palette.Palette) error {
	doc := paletteDocument{
		Roles:  make(map[string]string, palette.RoleCount),
		Custom: make(map[string]any),
	}
	for _, r := range palette.Roles() {
		doc.Roles[r.Alias()] = p.Role(r).String()
	}
	for _, name := range p.CustomNames() {
		doc.Custom[name] = nodeDocument(p.CustomNode(name).MustGet())
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func nodeDocument(node palette.Node) any {
	if c, ok := node.Color().Get(); ok {
		return c.String()
	}
	children := node.Namespace().MustGet()
	doc := make(map[string]any, len(children))
	for name, child := range children {
		doc[name] = nodeDocument(child)
	}
	return doc
}

func renderPreview(t theme.Theme) string {
	s := style.FromTheme(t)

	lines := []string{
		s.Title.Render("Title"),
		s.Subtitle.Render("Subtitle"),
		s.View.Render("Primary text"),
		s.Secondary.Render("Secondary text"),
		s.Tertiary.Render("Tertiary text"),
		s.Highlight.Render(" Selected ") + s.View.Render(" ") + s.HighlightInactive.Render(" Unfocused "),
	}

	panel := s.Panel.Padding(0, 1).Render(strings.Join(lines, "\n"))
	if t.Shadow {
		panel = dropShadow(panel, s)
	}
	return s.Background.Padding(1, 2).Render(panel)
}

// dropShadow draws the shadow role one cell below and to the right of block.
func dropShadow(block string, s style.Styles) string {
	width, height := lipgloss.Width(block), lipgloss.Height(block)

	right := " " + strings.Repeat("\n"+s.Shadow.Render(" "), height-1)
	bottom := " " + s.Shadow.Render(strings.Repeat(" ", width))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, block, right),
		bottom,
	)
}
