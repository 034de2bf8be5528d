package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stackr-cli/stackr/filesystem"
	"github.com/stackr-cli/stackr/history"
	"github.com/stackr-cli/stackr/icon"
	"github.com/stackr-cli/stackr/util"
	"github.com/stackr-cli/stackr/where"
)

type clearTarget struct {
	name    string
	argLong string
	clear   func() error
}

var clearTargets = []clearTarget{
	{"shell history", "history", history.Clear},
	{"log files", "logs", func() error { return filesystem.API().RemoveAll(where.Logs()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		clearCmd.Flags().Bool(target.argLong, false, "clear "+target.name)
	}
}

// clearCmd removes stored shell history and logs.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear stored shell history and logs",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			handleErr(target.clear())
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
