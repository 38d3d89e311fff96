package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/palette"
	"github.com/tinct-cli/tinct/theme"
)

func TestFromTheme(t *testing.T) {
	Convey("FromTheme", t, func() {
		th := theme.Default()
		th.Palette.SetRole(palette.Highlight, color.Rgb(0xff, 0, 0))
		s := FromTheme(th)

		Convey("Should map roles to style colors", func() {
			So(s.View.GetForeground(), ShouldResemble, lipgloss.Color("0"))
			So(s.View.GetBackground(), ShouldResemble, lipgloss.Color("7"))
			So(s.Highlight.GetBackground(), ShouldResemble, lipgloss.Color("#ff0000"))
			So(s.Highlight.GetForeground(), ShouldResemble, lipgloss.Color("7"))
			So(s.Secondary.GetForeground(), ShouldResemble, lipgloss.Color("4"))
			So(s.Subtitle.GetForeground(), ShouldResemble, lipgloss.Color("12"))
			So(s.Panel.GetBorderTopForeground(), ShouldResemble, lipgloss.Color("12"))
			So(s.Title.GetBold(), ShouldBeTrue)
		})

		Convey("Should keep the theme", func() {
			So(s.Theme.Palette, ShouldPointTo, th.Palette)
		})
	})
}

func TestBorder(t *testing.T) {
	Convey("Border", t, func() {
		So(Border(theme.BordersSimple), ShouldResemble, lipgloss.NormalBorder())
		So(Border(theme.BordersOutset), ShouldResemble, lipgloss.ThickBorder())
		So(Border(theme.BordersNone), ShouldResemble, lipgloss.HiddenBorder())
	})
}

func TestText(t *testing.T) {
	Convey("Text helpers should keep the visible content", t, func() {
		So(lipgloss.Width(Tag(color.Dark(color.Black), color.Dark(color.Green))("current")), ShouldEqual, len("current")+2)
		So(Italic("alias"), ShouldContainSubstring, "alias")
	})
}

func TestSwatch(t *testing.T) {
	Convey("Swatch should render the requested width", t, func() {
		So(lipgloss.Width(Swatch(color.Dark(color.Red), 4)), ShouldEqual, 4)
		So(Swatch(color.Dark(color.Red), -1), ShouldBeEmpty)
	})
}
