package cmd

import (
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tinct-cli/tinct/palette"
	"github.com/tinct-cli/tinct/style"
)

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.SetOut(os.Stdout)
}

// rolesCmd lists the built-in roles.
var rolesCmd = &cobra.Command{
	Use:   "roles [query]",
	Short: "List the built-in color roles and their aliases",
	Long:  "List the built-in color roles, their snake_case aliases and their default colors, optionally filtered by a fuzzy query.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		roles := palette.Roles()
		if len(args) > 0 {
			roles = filterRoles(args[0], roles)
		}

		defaults := palette.New()
		width := nameWidth()
		for _, r := range roles {
			cmd.Println(
				renderName(r.String(), 0, width),
				style.Italic(renderName(r.Alias(), 0, width)),
				style.Swatch(defaults.Role(r), swatchWidth),
				style.Faint(defaults.Role(r).String()),
			)
		}
	},
}

// filterRoles keeps roles whose name or alias fuzzily matches query.
func filterRoles(query string, roles []palette.Role) []palette.Role {
	return lo.Filter(roles, func(r palette.Role, _ int) bool {
		return len(fuzzy.FindFold(query, []string{r.String(), r.Alias()})) > 0
	})
}
