// Package cmd implements the command-line interface for tinct.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/config"
	"github.com/tinct-cli/tinct/constant"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/log"
	"github.com/tinct-cli/tinct/style"
	"github.com/tinct-cli/tinct/where"
)

// closest returns the candidate with the smallest edit distance to target.
func closest(target string, candidates []string) string {
	return lo.MinBy(candidates, func(a string, b string) bool {
		return levenshtein.Distance(target, a) < levenshtein.Distance(target, b)
	})
}

func errUnknownKey(key string) error {
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Dark(color.Red))(key),
		style.Fg(color.Dark(color.Yellow))(closest(key, lo.Keys(config.Default))),
	)
}

func errUnknownOption(what, value string, options []string) error {
	return fmt.Errorf(
		"unknown %s %s, did you mean %s?",
		what,
		style.Fg(color.Dark(color.Red))(value),
		style.Fg(color.Dark(color.Yellow))(closest(value, options)),
	)
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// configValidators check values before they are written to the config file.
// Theme settings are checked against the theme files on disk so that a typo
// is caught by `config set` instead of by every later command.
var configValidators = map[string]func(value any) error{
	key.ThemeDefault: func(value any) error {
		name := value.(string)
		if name == "" {
			return nil
		}
		_, err := selectedTheme(name)
		return err
	},
	key.ThemeNamespace: func(value any) error {
		ns := value.(string)
		if ns == "" {
			return nil
		}
		t, err := selectedTheme(viper.GetString(key.ThemeDefault))
		if err != nil {
			return err
		}
		return checkNamespace(t, ns)
	},
	key.IconsVariant: func(value any) error {
		variant := value.(string)
		if lo.Contains(icon.AvailableVariants(), variant) {
			return nil
		}
		return errUnknownOption("icons variant", variant, icon.AvailableVariants())
	},
	key.LogsLevel: func(value any) error {
		level := value.(string)
		if _, err := logrus.ParseLevel(level); err != nil {
			return errUnknownOption("log level", level, lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string {
				return l.String()
			}))
		}
		return nil
	},
}

// configValue converts raw to the type of the field registered under name and validates it.
func configValue(name, raw string) (any, error) {
	field, ok := config.Default[name]
	if !ok {
		return nil, errUnknownKey(name)
	}

	var value any
	switch field.Value.(type) {
	case bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", name, raw)
		}
		value = parsed
	case int:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", name, raw)
		}
		value = parsed
	default:
		value = raw
	}

	if validate, ok := configValidators[name]; ok {
		if err := validate(value); err != nil {
			return nil, err
		}
	}
	return value, nil
}

func configFilePath() string {
	return filepath.Join(where.Config(), constant.Tinct+".toml")
}

// saveConfig writes the in-memory configuration, creating the file on first use.
func saveConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd serves as the parent command for managing application configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration settings and defaults",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Specify the configuration keys to retrieve information for")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

// configInfoCmd displays metadata and descriptions for configuration fields.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display detailed information and descriptions for specified configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(keys) == 0 {
			keys = lo.Keys(config.Default)
		}
		sort.Strings(keys)

		fields := make([]config.Field, 0, len(keys))
		for _, k := range keys {
			field, ok := config.Default[k]
			if !ok {
				handleErr(errUnknownKey(k))
			}
			fields = append(fields, field)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(lo.Map(fields, func(f config.Field, _ int) *config.Field { return &f })))
			return
		}

		for i, field := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(field.Pretty())
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.SetOut(os.Stdout)
}

// configSetCmd updates the value of a specific configuration key.
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Update the value of a specified configuration key",
	Long: "Update the value of a specified configuration key.\n" +
		"Theme and namespace names are checked against the themes directory before they are saved.",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		value, err := configValue(name, args[1])
		handleErr(err)

		viper.Set(name, value)
		handleErr(saveConfig())
		log.Info("config set ", name, " = ", value)

		cmd.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Dark(color.Green))(icon.Get(icon.Success)),
			style.Fg(color.Dark(color.Magenta))(name),
			style.Fg(color.Dark(color.Yellow))(fmt.Sprint(value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.SetOut(os.Stdout)
}

// configGetCmd retrieves the current value of a configuration key.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Retrieve the current value of a specified configuration key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		if _, ok := config.Default[args[0]]; !ok {
			handleErr(errUnknownKey(args[0]))
		}
		cmd.Println(viper.Get(args[0]))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite the existing configuration file")
	configWriteCmd.SetOut(os.Stdout)
}

// configWriteCmd writes the current configuration to disk.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if exists := lo.Must(filesystem.API().Exists(path)); exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfig())
		cmd.Printf("%s wrote config to %s\n", style.Fg(color.Dark(color.Green))(icon.Get(icon.Success)), path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
	configDeleteCmd.SetOut(os.Stdout)
}

// configDeleteCmd removes the config file.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFilePath()))
		cmd.Printf("%s deleted config\n", style.Fg(color.Dark(color.Green))(icon.Get(icon.Success)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.SetOut(os.Stdout)
}

// configResetCmd restores configuration keys to their default values.
var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore configuration keys to their default values, all of them when none is given",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(resetConfig(args))
		handleErr(saveConfig())

		if len(args) == 0 {
			cmd.Printf("%s reset all config values\n", style.Fg(color.Dark(color.Green))(icon.Get(icon.Success)))
			return
		}
		for _, name := range args {
			cmd.Printf(
				"%s reset %s to %s\n",
				style.Fg(color.Dark(color.Green))(icon.Get(icon.Success)),
				style.Fg(color.Dark(color.Magenta))(name),
				style.Fg(color.Dark(color.Yellow))(fmt.Sprint(config.Default[name].Value)),
			)
		}
	},
}

// resetConfig restores the named keys, or every key when names is empty.
func resetConfig(names []string) error {
	if len(names) == 0 {
		names = lo.Keys(config.Default)
	}

	for _, name := range names {
		if _, ok := config.Default[name]; !ok {
			return errUnknownKey(name)
		}
	}
	for _, name := range names {
		viper.Set(name, config.Default[name].Value)
	}
	return nil
}
