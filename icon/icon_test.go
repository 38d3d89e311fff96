package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Namespace

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Every icon has a definition", t, func() {
		for _, i := range []Icon{Fail, Success, Role, Namespace, Color} {
			So(icons, ShouldContainKey, i)
		}
	})
}
