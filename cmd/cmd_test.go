package cmd

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stackr-cli/stackr/command"
	"github.com/stackr-cli/stackr/filesystem"
	"github.com/stackr-cli/stackr/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestInlineCommand(t *testing.T) {
	Convey("inline applies operations from arguments and flags", t, func() {
		var buf bytes.Buffer
		inlineCmd.SetOut(&buf)
		rootCmd.SetArgs([]string{"inline", "--kind", "unbounded", "--op", "push 1,push 2", "pop", "peek"})

		So(rootCmd.Execute(), ShouldBeNil)
		So(buf.String(), ShouldEqual, "push 1: ok\npush 2: ok\npop: 2\npeek: 1\n[1]\n")
	})
}

func TestCompletions(t *testing.T) {
	Convey("Kinds complete to both stack kinds", t, func() {
		kinds, _ := completionKinds(nil, nil, "")
		So(kinds, ShouldResemble, []string{"bounded", "unbounded"})
	})

	Convey("Unknown keys suggest the closest one", t, func() {
		So(errUnknownKey("stack.max_capcity").Error(), ShouldContainSubstring, "stack.max_capacity")
	})
}

func TestPromptsEnabled(t *testing.T) {
	Convey("Prompts follow the terminal unless forced", t, func() {
		viper.Set(key.ShellForcePrompt, false)
		So(promptsEnabled(true), ShouldBeTrue)
		So(promptsEnabled(false), ShouldBeFalse)

		viper.Set(key.ShellForcePrompt, true)
		So(promptsEnabled(false), ShouldBeTrue)

		viper.Set(key.ShellForcePrompt, false)
	})

	Convey("The force-prompt flag is bound to the config key", t, func() {
		So(rootCmd.Flags().Lookup("force-prompt"), ShouldNotBeNil)
	})
}

func inlineFlags(output string, ops ...string) *cobra.Command {
	c := &cobra.Command{}
	c.Flags().StringSlice("op", ops, "")
	c.Flags().Bool("json", false, "")
	c.Flags().String("output", output, "")
	return c
}

func TestRunInlineOutput(t *testing.T) {
	Convey("Given an unbounded stack kind", t, func() {
		viper.Set(key.StackDefaultKind, "unbounded")
		defer viper.Set(key.StackDefaultKind, "bounded")

		Convey("The transcript is written and flushed to the output file", func() {
			err := runInline(inlineFlags("/inline/out.txt", "push 4", "peek"), nil)
			So(err, ShouldBeNil)

			contents, err := filesystem.API().ReadFile("/inline/out.txt")
			So(err, ShouldBeNil)
			So(string(contents), ShouldEqual, "push 4: ok\npeek: 4\n[4]\n")
		})

		Convey("A failed run is returned instead of exiting", func() {
			err := runInline(inlineFlags("/inline/bad.txt", "shove 1"), nil)
			So(errors.Is(err, command.ErrUnknownCommand), ShouldBeTrue)

			exists, err := filesystem.API().Exists("/inline/bad.txt")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
