package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should read base names as dark variants", func() {
			So(Parse("red").MustGet(), ShouldResemble, Dark(Red))
			So(Parse("dark red").MustGet(), ShouldResemble, Dark(Red))
			So(Parse("  Blue ").MustGet(), ShouldResemble, Dark(Blue))
		})

		Convey("Should read light variants", func() {
			So(Parse("light white").MustGet(), ShouldResemble, Light(White))
			So(Parse("Light Blue").MustGet(), ShouldResemble, Light(Blue))
		})

		Convey("Should read the terminal default", func() {
			So(Parse("default").MustGet(), ShouldResemble, TerminalDefault())
			So(Parse("terminal_default").MustGet().IsDefault(), ShouldBeTrue)
		})

		Convey("Should read hex colors", func() {
			So(Parse("#ff8000").MustGet(), ShouldResemble, Rgb(0xff, 0x80, 0x00))
			So(Parse("0x1E1E2E").MustGet(), ShouldResemble, Rgb(0x1e, 0x1e, 0x2e))
			So(Parse("#f80").MustGet(), ShouldResemble, Rgb(0xff, 0x88, 0x00))
		})

		Convey("Should read low resolution colors", func() {
			So(Parse("125").MustGet(), ShouldResemble, RgbLowRes(1, 2, 5))
		})

		Convey("Should reject everything else", func() {
			for _, text := range []string{"", "not-a-color", "light", "light purple", "#12345", "#1234567", "#ggg", "126", "1234"} {
				So(Parse(text).IsAbsent(), ShouldBeTrue)
			}
		})
	})
}

func TestString(t *testing.T) {
	Convey("String should round-trip through Parse", t, func() {
		for _, c := range []Color{
			TerminalDefault(),
			Dark(Magenta),
			Light(Black),
			Rgb(1, 2, 3),
			RgbLowRes(5, 0, 3),
		} {
			So(Parse(c.String()).MustGet(), ShouldResemble, c)
		}
	})
}

func TestRgbLowRes(t *testing.T) {
	Convey("RgbLowRes should clamp channels to the cube", t, func() {
		So(RgbLowRes(9, 6, 5), ShouldResemble, RgbLowRes(5, 5, 5))
	})
}

func TestLipgloss(t *testing.T) {
	Convey("Lipgloss", t, func() {
		So(Dark(Blue).Lipgloss(), ShouldResemble, lipgloss.Color("4"))
		So(Light(Blue).Lipgloss(), ShouldResemble, lipgloss.Color("12"))
		So(Rgb(0xaa, 0xbb, 0xcc).Lipgloss(), ShouldResemble, lipgloss.Color("#aabbcc"))
		So(RgbLowRes(1, 2, 3).Lipgloss(), ShouldResemble, lipgloss.Color("67"))
		So(TerminalDefault().Lipgloss(), ShouldResemble, lipgloss.NoColor{})
	})
}

func TestText(t *testing.T) {
	Convey("Text marshaling", t, func() {
		var c Color
		So(c.UnmarshalText([]byte("light cyan")), ShouldBeNil)
		So(c, ShouldResemble, Light(Cyan))

		text, err := c.MarshalText()
		So(err, ShouldBeNil)
		So(string(text), ShouldEqual, "light cyan")

		So(c.UnmarshalText([]byte("nope")), ShouldNotBeNil)
	})
}
