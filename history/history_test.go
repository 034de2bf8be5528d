package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackr-cli/stackr/filesystem"
	"github.com/stackr-cli/stackr/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		viper.Set(key.ShellHistoryLimit, 3)
		So(Clear(), ShouldBeNil)

		Convey("When remembering lines", func() {
			So(Remember("push 1"), ShouldBeNil)
			So(Remember("  "), ShouldBeNil)
			So(Remember("push 2"), ShouldBeNil)
			So(Remember("push 2"), ShouldBeNil)

			Convey("Then blanks and repeats are skipped", func() {
				lines, err := Get()
				So(err, ShouldBeNil)
				So(lines, ShouldResemble, []string{"push 1", "push 2"})
			})

			Convey("Then the oldest lines are dropped beyond the limit", func() {
				So(Remember("pop"), ShouldBeNil)
				So(Remember("peek"), ShouldBeNil)

				lines, err := Get()
				So(err, ShouldBeNil)
				So(lines, ShouldResemble, []string{"push 2", "pop", "peek"})
			})
		})

		Convey("Get returns an empty list", func() {
			lines, err := Get()
			So(err, ShouldBeNil)
			So(lines, ShouldBeEmpty)
		})
	})
}
