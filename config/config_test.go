package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.IconsVariant), ShouldEqual, "plain")
			So(viper.GetBool(key.CliColored), ShouldBeTrue)
		})

		Convey("Should register every defined key", func() {
			So(Default, ShouldHaveLength, key.DefinedFieldsCount)
			So(Default, ShouldContainKey, key.ThemeDefault)
			So(Default, ShouldContainKey, key.ThemeNamespace)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("theme.namespace")
			So(result, ShouldEqual, "theme_namespace")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env should prefix the application name", func() {
			f := Default[key.ThemeNamespace]
			So(f.Env(), ShouldEqual, "TINCT_THEME_NAMESPACE")
		})

		Convey("typeName should describe the default value", func() {
			logsWrite := Default[key.LogsWrite]
			logsLevel := Default[key.LogsLevel]
			So(logsWrite.typeName(), ShouldEqual, "bool")
			So(logsLevel.typeName(), ShouldEqual, "string")
		})
	})
}
