// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/constant"
	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/log"
	"github.com/tinct-cli/tinct/style"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("theme", "t", "", "Theme file path or name in the themes directory")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("theme", completionThemes))
	lo.Must0(viper.BindPFlag(key.ThemeDefault, rootCmd.PersistentFlags().Lookup("theme")))

	rootCmd.PersistentFlags().StringP("namespace", "n", "", "Namespace merged over the theme palette")
	lo.Must0(viper.BindPFlag(key.ThemeNamespace, rootCmd.PersistentFlags().Lookup("namespace")))
}

// rootCmd defines the entry point for the tinct application.
var rootCmd = &cobra.Command{
	Use:   constant.Tinct,
	Short: "Resolve and preview terminal UI color palettes",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Light(color.Red).Lipgloss()).Render("    - Resolve and preview terminal UI color palettes"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		t, err := loadTheme()
		handleErr(err)
		handleErr(renderPalette(cmd.OutOrStdout(), t.Palette))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
