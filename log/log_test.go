package log

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/filesystem"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/where"
)

func TestSetup(t *testing.T) {
	filesystem.SetMemMapFs()
	t.Setenv(where.EnvConfigPath, "/config")

	Convey("Log Setup", t, func() {
		Reset(viper.Reset)

		Convey("Should stay disabled when writing is off", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})

		Convey("Should write warnings to the daily file", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "warn")
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeTrue)

			WarnWithFields(map[string]any{"key": "accent"}, "unexpected value")

			path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
			contents := string(lo.Must(filesystem.API().ReadFile(path)))
			So(contents, ShouldContainSubstring, "unexpected value")
			So(contents, ShouldContainSubstring, "accent")
		})
	})
}
