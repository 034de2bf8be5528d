package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stackr-cli/stackr/color"
)

func TestRenderers(t *testing.T) {
	Convey("Renderers keep the text", t, func() {
		for _, render := range []func(string) string{Faint, Bold, Value, Failure, Fg(color.Cyan), Title} {
			So(render("[1, 2]"), ShouldContainSubstring, "[1, 2]")
		}
	})
}
