package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stackr-cli/stackr/filesystem"
	"github.com/stackr-cli/stackr/history"
	"github.com/stackr-cli/stackr/key"
	"github.com/stackr-cli/stackr/stack"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.IconsVariant, "plain")
}

func session(options Options, lines ...string) (*Shell, string) {
	var out bytes.Buffer
	sh := New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, options)
	if err := sh.Run(); err != nil {
		panic(err)
	}
	return sh, out.String()
}

func TestShell(t *testing.T) {
	Convey("A bounded session overflows and underflows without crashing", t, func() {
		_, out := session(Options{},
			"new bounded 3",
			"push 10", "push 20", "push 30", "push 40",
			"display",
			"pop", "pop", "pop", "pop",
			"quit",
		)

		So(out, ShouldContainSubstring, "created bounded stack with capacity 3")
		So(out, ShouldContainSubstring, "stack overflow: cannot push 40")
		So(out, ShouldContainSubstring, "[10, 20, 30]")
		So(strings.Index(out, "popped 30"), ShouldBeLessThan, strings.Index(out, "popped 10"))
		So(out, ShouldContainSubstring, "stack underflow")
	})

	Convey("Menu codes work like names", t, func() {
		_, out := session(Options{}, "1 unbounded", "5 7", "5 8", "7", "3", "4")
		So(out, ShouldContainSubstring, "created unbounded stack")
		So(out, ShouldContainSubstring, "top is 8")
		So(out, ShouldContainSubstring, "size 2")
		So(out, ShouldContainSubstring, "not empty")
	})

	Convey("Missing integers are prompted for until valid", t, func() {
		sh, out := session(Options{Interactive: true, Prompt: "> "},
			"new", "bounded", "abc", "-1", "2",
			"push", "x", "5",
			"search", "5",
			"display",
		)

		So(out, ShouldContainSubstring, "Enter the size of the stack")
		So(out, ShouldContainSubstring, "invalid input: expected an integer")
		So(out, ShouldContainSubstring, "cannot be negative")
		So(out, ShouldContainSubstring, "created bounded stack with capacity 2")
		So(out, ShouldContainSubstring, "pushed 5")
		So(out, ShouldContainSubstring, "found 5 at index 0")
		So(out, ShouldContainSubstring, "[5]")
		So(sh.Current().IsPresent(), ShouldBeFalse)
	})

	Convey("Entering 0 cancels creation", t, func() {
		sh, out := session(Options{}, "new", "", "0")
		So(out, ShouldContainSubstring, "stack creation cancelled")
		So(sh.Current().IsPresent(), ShouldBeFalse)
	})

	Convey("A missing kind is asked for until valid", t, func() {
		sh, out := session(Options{Interactive: true, Prompt: "> "}, "new", "stack", "unbounded", "push 1", "peek")
		So(out, ShouldContainSubstring, "Enter the kind of the stack (bounded, unbounded)")
		So(out, ShouldContainSubstring, "invalid input: expected a stack kind")
		So(out, ShouldContainSubstring, "created unbounded stack")
		So(out, ShouldNotContainSubstring, "Enter the size of the stack")
		So(out, ShouldContainSubstring, "top is 1")
		So(sh.Current().IsPresent(), ShouldBeFalse)
	})

	Convey("An empty kind answer selects the default", t, func() {
		_, out := session(Options{Kind: stack.KindUnbounded}, "new", "", "push 3", "peek")
		So(out, ShouldContainSubstring, "created unbounded stack")
		So(out, ShouldContainSubstring, "top is 3")
	})

	Convey("A bare capacity creates a bounded stack without asking", t, func() {
		_, out := session(Options{Interactive: true, Prompt: "> "}, "new 4")
		So(out, ShouldContainSubstring, "created bounded stack with capacity 4")
		So(out, ShouldNotContainSubstring, "Enter the kind")
	})

	Convey("Prompts are printed only in interactive sessions", t, func() {
		_, out := session(Options{Interactive: true, Prompt: "stackr> "}, "new unbounded")
		So(out, ShouldContainSubstring, "stackr> ")

		_, out = session(Options{Prompt: "stackr> "}, "new unbounded")
		So(out, ShouldNotContainSubstring, "stackr> ")
	})

	Convey("Operations without a stack are refused", t, func() {
		_, out := session(Options{}, "pop")
		So(out, ShouldContainSubstring, "no stack, use new to create one")
	})

	Convey("Unknown commands get a suggestion", t, func() {
		_, out := session(Options{}, "destory")
		So(out, ShouldContainSubstring, `did you mean "destroy"`)
	})

	Convey("Given an initial stack", t, func() {
		initial, err := stack.NewUnbounded()
		So(err, ShouldBeNil)
		So(initial.Push(1), ShouldBeNil)

		Convey("Quitting releases it", func() {
			_, out := session(Options{Initial: mo.Some[stack.Stack](initial)}, "peek", "quit", "push 2")
			So(out, ShouldContainSubstring, "top is 1")
			So(out, ShouldNotContainSubstring, "pushed 2")

			_, err := initial.Destroy()
			So(err, ShouldEqual, stack.ErrInvalidHandle)
		})

		Convey("Destroy drops it", func() {
			sh, out := session(Options{Initial: mo.Some[stack.Stack](initial)}, "destroy", "peek")
			So(out, ShouldContainSubstring, "destroyed, released 1 element")
			So(out, ShouldContainSubstring, "no stack")
			So(sh.Current().IsPresent(), ShouldBeFalse)
		})

		Convey("A failed new keeps it", func() {
			sh, out := session(Options{
				Initial:      mo.Some[stack.Stack](initial),
				StackOptions: []stack.Option{stack.WithMaxCapacity(4)},
			}, "new bounded 5", "peek")
			So(out, ShouldContainSubstring, "failed to create stack")
			So(out, ShouldContainSubstring, "top is 1")
			So(sh.Current().IsPresent(), ShouldBeFalse)
		})
	})

	Convey("History is recorded when enabled", t, func() {
		viper.Set(key.ShellHistoryLimit, 10)
		So(history.Clear(), ShouldBeNil)

		_, out := session(Options{SaveHistory: true}, "new unbounded", "push 1", "history")
		So(out, ShouldContainSubstring, "new unbounded")
		So(out, ShouldContainSubstring, "push 1")

		lines, err := history.Get()
		So(err, ShouldBeNil)
		So(lines, ShouldResemble, []string{"new unbounded", "push 1", "history"})
	})

	Convey("The menu is printed on start when asked", t, func() {
		_, out := session(Options{ShowMenu: true, Width: 60}, "help")
		So(strings.Count(out, "[COMMANDS]"), ShouldEqual, 2)
	})
}
