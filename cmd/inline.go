package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stackr-cli/stackr/filesystem"
	"github.com/stackr-cli/stackr/inline"
	"github.com/stackr-cli/stackr/key"
	"github.com/stackr-cli/stackr/stack"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringSliceP("op", "o", []string{}, "Operations to apply in order, e.g. \"push 10,pop\"")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	inlineCmd.Flags().StringP("output", "O", "", "Write the output to a file instead of stdout")

	inlineCmd.SetOut(os.Stdout)
}

// inlineCmd applies a fixed sequence of operations without prompting.
var inlineCmd = &cobra.Command{
	Use:   "inline [op...]",
	Short: "Apply a sequence of stack operations non-interactively",
	Long: `Create a stack, apply every operation in order and print the outcome of each.

Operations are the shell commands that act on a stack:
  push <value>, pop, peek, size, isempty, search <value>, display, destroy

Operations may be given as arguments or with --op. A failing operation is reported
and the run continues.`,
	Example: `  stackr inline --kind bounded --capacity 3 "push 10" "push 20" pop
  stackr inline -k unbounded -o "push 7,push 8,peek" --json`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(runInline(cmd, args))
	},
}

// runInline writes the transcript to stdout or to the --output file.
// The file is closed before returning so that a failed flush is reported.
func runInline(cmd *cobra.Command, args []string) error {
	kind, err := stack.ParseKind(viper.GetString(key.StackDefaultKind))
	if err != nil {
		return err
	}

	options := &inline.Options{
		Kind:         kind,
		Capacity:     viper.GetInt(key.StackDefaultCapacity),
		Ops:          append(lo.Must(cmd.Flags().GetStringSlice("op")), args...),
		Json:         lo.Must(cmd.Flags().GetBool("json")),
		StackOptions: stackOptions(),
	}

	output := lo.Must(cmd.Flags().GetString("output"))
	if output == "" {
		return inline.Run(cmd.OutOrStdout(), options)
	}

	file, err := filesystem.API().Create(output)
	if err != nil {
		return err
	}

	runErr := inline.Run(file, options)
	closeErr := file.Close()
	return errors.Join(runErr, closeErr)
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline JSON output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline JSON output",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(inline.Schema()))
	},
}
