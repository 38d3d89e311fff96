package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/constant"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/log"
	"github.com/tinct-cli/tinct/style"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/util"
	"github.com/tinct-cli/tinct/where"
)

// loadTheme resolves the theme and namespace selected by flags or configuration.
func loadTheme() (theme.Theme, error) {
	t, err := selectedTheme(viper.GetString(key.ThemeDefault))
	if err != nil {
		return t, err
	}

	ns := viper.GetString(key.ThemeNamespace)
	if ns == "" {
		return t, nil
	}

	if err := checkNamespace(t, ns); err != nil {
		return t, err
	}
	return t.WithNamespace(ns), nil
}

// selectedTheme loads the theme called name, or the built-in theme when name is empty.
func selectedTheme(name string) (theme.Theme, error) {
	if name == "" {
		return theme.Default(), nil
	}

	path := theme.Find(name)
	log.Debug("loading theme ", path)

	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return theme.Default(), err
	}
	if !exists {
		if names := themeNames(); len(names) > 0 {
			return theme.Default(), fmt.Errorf(
				"unknown theme %s, did you mean %s?",
				style.Fg(color.Dark(color.Red))(name),
				style.Fg(color.Dark(color.Yellow))(closest(name, names)),
			)
		}
		return theme.Default(), fmt.Errorf("unknown theme %s, no file at %s", style.Fg(color.Dark(color.Red))(name), path)
	}

	return theme.LoadFile(path)
}

// checkNamespace fails unless ns is a namespace of t's palette.
func checkNamespace(t theme.Theme, ns string) error {
	if node, ok := t.Palette.CustomNode(ns).Get(); ok && node.IsNamespace() {
		return nil
	}

	namespaces := t.Palette.Namespaces()
	if len(namespaces) == 0 {
		return fmt.Errorf("unknown namespace %s, the theme defines none", style.Fg(color.Dark(color.Red))(ns))
	}
	return fmt.Errorf(
		"unknown namespace %s, did you mean %s?",
		style.Fg(color.Dark(color.Red))(ns),
		style.Fg(color.Dark(color.Yellow))(closest(ns, namespaces)),
	)
}

// themeNames lists the themes stored in the themes directory.
func themeNames() []string {
	entries, err := filesystem.API().ReadDir(where.Themes())
	if err != nil {
		return nil
	}

	return lo.FilterMap(entries, func(entry os.FileInfo, _ int) (string, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			return "", false
		}
		return util.FileStem(entry.Name()), true
	})
}

func completionThemes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return themeNames(), cobra.ShellCompDirectiveDefault
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

// themeCmd serves as the parent command for managing theme files.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage theme files",
}

func init() {
	themeCmd.AddCommand(themeListCmd)
}

// themeListCmd lists the themes found in the themes directory.
var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the themes stored in the themes directory",
	Run: func(cmd *cobra.Command, args []string) {
		names := themeNames()
		if len(names) == 0 {
			cmd.Println(style.Faint("no themes in " + where.Themes()))
			return
		}

		current := viper.GetString(key.ThemeDefault)
		for _, name := range names {
			if name == current {
				cmd.Println(style.Fg(color.Dark(color.Green))(name), style.Tag(color.Dark(color.Black), color.Dark(color.Green))("current"))
				continue
			}
			cmd.Println(name)
		}
	},
}

func init() {
	themeCmd.AddCommand(themeInitCmd)
	themeInitCmd.Flags().BoolP("force", "f", false, "Overwrite the theme if it already exists")
}

var themeTemplate = lo.Must(template.New("theme").Parse(constant.ThemeTemplate))

// themeInitCmd scaffolds a new theme file.
var themeInitCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new theme file with the default palette",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := "default"
		if len(args) > 0 {
			name = strings.TrimSpace(args[0])
		}

		path := theme.Find(name)
		exists := lo.Must(filesystem.API().Exists(path))
		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("theme %s already exists, use --force to overwrite", path))
		}

		var b strings.Builder
		handleErr(themeTemplate.Execute(&b, struct {
			Name string
			App  string
		}{
			Name: util.FileStem(name),
			App:  constant.Tinct,
		}))

		handleErr(filesystem.API().MkdirAll(filepath.Dir(path), 0o755))
		handleErr(filesystem.API().WriteFile(path, []byte(b.String()), 0o644))
		log.Info("wrote theme ", path)

		cmd.Printf(
			"%s wrote theme to %s\n",
			style.Fg(color.Dark(color.Green))(icon.Get(icon.Success)),
			path,
		)
	},
}
