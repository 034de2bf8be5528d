package command

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Resolves menu codes", func() {
			d, err := Lookup("5")
			So(err, ShouldBeNil)
			So(d.Name, ShouldEqual, Push)

			_, err = Lookup("99")
			So(errors.Is(err, ErrUnknownCommand), ShouldBeTrue)
		})

		Convey("Resolves names and aliases case-insensitively", func() {
			d, err := Lookup("PEEK")
			So(err, ShouldBeNil)
			So(d.Name, ShouldEqual, Peek)

			d, err = Lookup("top")
			So(err, ShouldBeNil)
			So(d.Name, ShouldEqual, Peek)
		})

		Convey("Resolves unambiguous prefixes before abbreviations", func() {
			d, err := Lookup("is")
			So(err, ShouldBeNil)
			So(d.Name, ShouldEqual, IsEmpty)

			d, err = Lookup("des")
			So(err, ShouldBeNil)
			So(d.Name, ShouldEqual, Destroy)

			_, err = Lookup("s")
			So(errors.Is(err, ErrAmbiguousCommand), ShouldBeTrue)
		})

		Convey("Resolves unambiguous abbreviations", func() {
			d, err := Lookup("psh")
			So(err, ShouldBeNil)
			So(d.Name, ShouldEqual, Push)

			d, err = Lookup("ps")
			So(err, ShouldBeNil)
			So(d.Name, ShouldEqual, Push)
		})

		Convey("Rejects ambiguous abbreviations", func() {
			_, err := Lookup("p")
			So(errors.Is(err, ErrAmbiguousCommand), ShouldBeTrue)
		})

		Convey("Suggests the closest command for typos", func() {
			_, err := Lookup("destory")
			So(errors.Is(err, ErrUnknownCommand), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `did you mean "destroy"`)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		c, err := Parse("  push   42 ")
		So(err, ShouldBeNil)
		So(c.Name, ShouldEqual, Push)
		So(c.Args, ShouldResemble, []string{"42"})

		v, err := c.Arg()
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 42)

		_, err = Parse("   ")
		So(err, ShouldEqual, ErrEmptyLine)

		_, err = Parse("pop 1")
		So(errors.Is(err, ErrTooManyArguments), ShouldBeTrue)

		c, err = Parse("1 unbounded")
		So(err, ShouldBeNil)
		So(c.Name, ShouldEqual, New)
	})

	Convey("ParseValue is strict", t, func() {
		v, err := ParseValue("-2147483648")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, -2147483648)

		for _, bad := range []string{"", "1.5", "ten", "0x10"} {
			_, err := ParseValue(bad)
			So(errors.Is(err, ErrNotInteger), ShouldBeTrue)
		}
	})

	Convey("Arg requires a value", t, func() {
		_, err := Command{Name: Push}.Arg()
		So(errors.Is(err, ErrMissingArgument), ShouldBeTrue)
	})
}

func TestMenu(t *testing.T) {
	Convey("Menu lists every command with its code", t, func() {
		menu := Menu()
		for _, d := range Definitions {
			So(menu, ShouldContainSubstring, string(d.Name))
		}
		So(menu, ShouldContainSubstring, " 8 - search <value>")
	})
}
