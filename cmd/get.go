package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/palette"
	"github.com/tinct-cli/tinct/style"
)

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolP("swatch", "s", false, "Print a color swatch next to the value")
	getCmd.SetOut(os.Stdout)
}

// getCmd resolves a single role or custom color.
var getCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Resolve a role or custom color by name",
	Long:  "Resolve a role (by name or alias) or a top-level custom color of the resolved palette and print it.",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return lo.Map(palette.Roles(), func(r palette.Role, _ int) string {
			return r.Alias()
		}), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		t, err := loadTheme()
		handleErr(err)

		c, err := resolveName(t.Palette, args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("swatch")) {
			cmd.Println(style.Swatch(c, swatchWidth), c)
			return
		}
		cmd.Println(c)
	},
}

// resolveName looks name up as a role, then as a custom color.
func resolveName(p *palette.Palette, name string) (color.Color, error) {
	if c, ok := p.Resolve(name).Get(); ok {
		return c, nil
	}

	if node, ok := p.CustomNode(name).Get(); ok && node.IsNamespace() {
		return color.Color{}, fmt.Errorf("%s is a namespace, not a color", style.Fg(color.Dark(color.Red))(name))
	}

	candidates := p.CustomNames()
	for _, r := range palette.Roles() {
		candidates = append(candidates, r.String(), r.Alias())
	}

	return color.Color{}, fmt.Errorf(
		"unknown color %s, did you mean %s?",
		style.Fg(color.Dark(color.Red))(name),
		style.Fg(color.Dark(color.Yellow))(closest(name, candidates)),
	)
}
