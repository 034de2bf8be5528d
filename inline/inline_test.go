package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stackr-cli/stackr/command"
	"github.com/stackr-cli/stackr/stack"
)

func TestRun(t *testing.T) {
	Convey("Given the classic bounded scenario", t, func() {
		options := &Options{
			Kind:     stack.KindBounded,
			Capacity: 3,
			Ops:      []string{"push 10", "push 20", "push 30", "push 40", "pop", "pop", "pop", "pop"},
		}

		Convey("The text transcript reports each step", func() {
			var buf bytes.Buffer
			So(Run(&buf, options), ShouldBeNil)

			So(buf.String(), ShouldEqual, `push 10: ok
push 20: ok
push 30: ok
push 40: stack overflow: cannot push 40
pop: 30
pop: 20
pop: 10
pop: stack underflow: the stack is empty
[]
`)
		})

		Convey("The JSON output decodes into Output", func() {
			options.Json = true
			var buf bytes.Buffer
			So(Run(&buf, options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Kind, ShouldEqual, "bounded")
			So(output.Capacity, ShouldEqual, 3)
			So(output.Steps, ShouldHaveLength, 8)
			So(output.Steps[3].Error, ShouldNotBeEmpty)
			So(*output.Steps[4].Value, ShouldEqual, 30)
			So(output.Final, ShouldBeEmpty)
		})
	})

	Convey("Given an unbounded stack", t, func() {
		var buf bytes.Buffer
		err := Run(&buf, &Options{
			Kind: stack.KindUnbounded,
			Ops:  []string{"push 3", "push 1", "push 4", "search 1", "search 9", "isempty", "peek", "size"},
			Json: true,
		})
		So(err, ShouldBeNil)

		var output Output
		So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
		So(*output.Steps[3].Index, ShouldEqual, 1)
		So(output.Steps[4].Index, ShouldBeNil)
		So(*output.Steps[5].Empty, ShouldBeFalse)
		So(*output.Steps[6].Value, ShouldEqual, 4)
		So(*output.Steps[7].Value, ShouldEqual, 3)
		So(output.Final, ShouldResemble, []int{3, 1, 4})
	})

	Convey("Invalid ops abort before anything runs", t, func() {
		var buf bytes.Buffer
		err := Run(&buf, &Options{Kind: stack.KindUnbounded, Ops: []string{"push 1", "shove 2"}})
		So(errors.Is(err, command.ErrUnknownCommand), ShouldBeTrue)
		So(buf.Len(), ShouldEqual, 0)

		err = Run(&buf, &Options{Kind: stack.KindUnbounded, Ops: []string{"quit"}})
		So(err, ShouldNotBeNil)
	})

	Convey("Invalid capacity is reported", t, func() {
		var buf bytes.Buffer
		err := Run(&buf, &Options{Kind: stack.KindBounded, Capacity: 0})
		So(errors.Is(err, stack.ErrInvalidCapacity), ShouldBeTrue)
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema describes the output document", t, func() {
		raw, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(raw), ShouldContainSubstring, `"steps"`)
		So(string(raw), ShouldContainSubstring, `"final"`)
	})
}
