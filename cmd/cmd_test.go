package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/config"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/palette"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func samplePalette() *palette.Palette {
	p := palette.New()
	p.SetColor("accent", color.Rgb(0x5b, 0x8d, 0xef))
	p.AddNamespace("dark", palette.Namespace{
		"view":  palette.ColorNode(color.Dark(color.Black)),
		"popup": palette.NamespaceNode(palette.Namespace{"view": palette.ColorNode(color.Light(color.Black))}),
	})
	return p
}

func TestClosest(t *testing.T) {
	Convey("closest should pick the nearest candidate", t, func() {
		So(closest("backgrund", []string{"shadow", "background", "view"}), ShouldEqual, "background")
	})
}

func TestResolveName(t *testing.T) {
	Convey("resolveName", t, func() {
		p := samplePalette()

		Convey("Should resolve roles and custom colors", func() {
			c, err := resolveName(p, "Title_Primary")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, color.Dark(color.Red))

			c, err = resolveName(p, "accent")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, color.Rgb(0x5b, 0x8d, 0xef))
		})

		Convey("Should refuse namespaces", func() {
			_, err := resolveName(p, "dark")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "namespace")
		})

		Convey("Should suggest the nearest name", func() {
			_, err := resolveName(p, "acent")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "accent")
		})
	})
}

func TestFilterRoles(t *testing.T) {
	Convey("filterRoles should match names and aliases fuzzily", t, func() {
		roles := filterRoles("hltx", palette.Roles())
		So(roles, ShouldResemble, []palette.Role{palette.HighlightText})

		roles = filterRoles("title", palette.Roles())
		So(roles, ShouldResemble, []palette.Role{palette.TitlePrimary, palette.TitleSecondary})

		So(filterRoles("zzz", palette.Roles()), ShouldBeEmpty)
	})
}

func TestEncodePalette(t *testing.T) {
	Convey("encodePalette should write roles and the custom tree", t, func() {
		var buf bytes.Buffer
		So(encodePalette(&buf, samplePalette()), ShouldBeNil)

		var doc map[string]any
		So(json.Unmarshal(buf.Bytes(), &doc), ShouldBeNil)

		roles := doc["roles"].(map[string]any)
		So(roles, ShouldHaveLength, palette.RoleCount)
		So(roles["title_secondary"], ShouldEqual, "light blue")

		custom := doc["custom"].(map[string]any)
		So(custom["accent"], ShouldEqual, "#5b8def")
		dark := custom["dark"].(map[string]any)
		So(dark["view"], ShouldEqual, "black")
		So(dark["popup"].(map[string]any)["view"], ShouldEqual, "light black")
	})
}

func TestRenderPalette(t *testing.T) {
	Convey("renderPalette should list roles and custom entries", t, func() {
		var buf bytes.Buffer
		So(renderPalette(&buf, samplePalette()), ShouldBeNil)

		out := buf.String()
		for _, r := range palette.Roles() {
			So(out, ShouldContainSubstring, r.String())
		}
		So(out, ShouldContainSubstring, "accent")
		So(out, ShouldContainSubstring, "popup")
		So(strings.Count(out, "\n"), ShouldEqual, palette.RoleCount+1+5)
	})
}

func TestLoadTheme(t *testing.T) {
	t.Setenv(where.EnvConfigPath, "/config")

	Convey("loadTheme", t, func() {
		Reset(viper.Reset)

		So(filesystem.API().WriteFile(theme.Find("night"), []byte(`
[colors]
accent = "red"

[colors.dark]
view = "black"
`), 0o644), ShouldBeNil)

		Convey("Should fall back to the default theme", func() {
			th, err := loadTheme()
			So(err, ShouldBeNil)
			So(th.Palette.Equal(palette.New()), ShouldBeTrue)
		})

		Convey("Should load the named theme and merge the namespace", func() {
			viper.Set(key.ThemeDefault, "night")
			viper.Set(key.ThemeNamespace, "dark")

			th, err := loadTheme()
			So(err, ShouldBeNil)
			So(th.Palette.Role(palette.View), ShouldResemble, color.Dark(color.Black))
			So(th.Palette.Custom("accent").MustGet(), ShouldResemble, color.Dark(color.Red))
		})

		Convey("Should reject unknown namespaces", func() {
			viper.Set(key.ThemeDefault, "night")
			viper.Set(key.ThemeNamespace, "drak")

			_, err := loadTheme()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "dark")
		})

		Convey("Should suggest stored themes for unknown names", func() {
			viper.Set(key.ThemeDefault, "nigth")

			_, err := loadTheme()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "night")
		})

		Convey("Should list stored themes", func() {
			So(themeNames(), ShouldContain, "night")
		})
	})
}

const nightTheme = `
borders = "outset"

[colors]
accent = "red"

[colors.dark]
view = "black"
`

func TestConfigValue(t *testing.T) {
	t.Setenv(where.EnvConfigPath, "/config")

	Convey("configValue", t, func() {
		Reset(viper.Reset)
		So(filesystem.API().WriteFile(theme.Find("night"), []byte(nightTheme), 0o644), ShouldBeNil)

		Convey("Should convert values to the field type", func() {
			v, err := configValue(key.LogsWrite, "true")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = configValue(key.LogsJson, "sometimes")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject unknown keys", func() {
			_, err := configValue("theme.defualt", "night")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.ThemeDefault)
		})

		Convey("Should accept stored themes only", func() {
			v, err := configValue(key.ThemeDefault, "night")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "night")

			_, err = configValue(key.ThemeDefault, "nihgt")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "night")

			v, err = configValue(key.ThemeDefault, "")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "")
		})

		Convey("Should check namespaces against the configured theme", func() {
			viper.Set(key.ThemeDefault, "night")

			v, err := configValue(key.ThemeNamespace, "dark")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "dark")

			_, err = configValue(key.ThemeNamespace, "drak")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "dark")

			_, err = configValue(key.ThemeNamespace, "accent")
			So(err, ShouldNotBeNil)
		})

		Convey("Should refuse namespaces when the built-in theme is used", func() {
			_, err := configValue(key.ThemeNamespace, "dark")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "defines none")
		})

		Convey("Should check icon variants and log levels", func() {
			_, err := configValue(key.IconsVariant, "nerd")
			So(err, ShouldBeNil)

			_, err = configValue(key.IconsVariant, "emjoi")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "emoji")

			_, err = configValue(key.LogsLevel, "debug")
			So(err, ShouldBeNil)

			_, err = configValue(key.LogsLevel, "verbose")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSaveConfig(t *testing.T) {
	t.Setenv(where.EnvConfigPath, "/config")

	Convey("saveConfig", t, func() {
		Reset(viper.Reset)
		So(config.Setup(), ShouldBeNil)

		Convey("Should create the config file and keep it current", func() {
			viper.Set(key.IconsVariant, "nerd")
			So(saveConfig(), ShouldBeNil)

			contents, err := filesystem.API().ReadFile(configFilePath())
			So(err, ShouldBeNil)
			So(string(contents), ShouldContainSubstring, "nerd")

			So(resetConfig([]string{key.IconsVariant}), ShouldBeNil)
			So(saveConfig(), ShouldBeNil)

			contents, err = filesystem.API().ReadFile(configFilePath())
			So(err, ShouldBeNil)
			So(string(contents), ShouldNotContainSubstring, "nerd")
			So(viper.GetString(key.IconsVariant), ShouldEqual, "plain")
		})

		Convey("Should refuse to reset unknown keys", func() {
			viper.Set(key.IconsVariant, "nerd")

			err := resetConfig([]string{key.IconsVariant, "icons.varaint"})
			So(err, ShouldNotBeNil)
			So(viper.GetString(key.IconsVariant), ShouldEqual, "nerd")
		})
	})
}
