// Package cmd implements the command-line interface for stackr.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stackr-cli/stackr/color"
	"github.com/stackr-cli/stackr/constant"
	"github.com/stackr-cli/stackr/icon"
	"github.com/stackr-cli/stackr/key"
	"github.com/stackr-cli/stackr/log"
	"github.com/stackr-cli/stackr/shell"
	"github.com/stackr-cli/stackr/stack"
	"github.com/stackr-cli/stackr/style"
	"github.com/stackr-cli/stackr/util"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("yes", "y", false, "Use the configured stack kind and capacity without asking")

	rootCmd.PersistentFlags().StringP("kind", "k", "", "Stack kind to create (bounded, unbounded)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("kind", completionKinds))
	lo.Must0(viper.BindPFlag(key.StackDefaultKind, rootCmd.PersistentFlags().Lookup("kind")))

	rootCmd.PersistentFlags().IntP("capacity", "c", 0, "Capacity of a bounded stack")
	lo.Must0(viper.BindPFlag(key.StackDefaultCapacity, rootCmd.PersistentFlags().Lookup("capacity")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("prompt", "p", "", "Shell prompt string")
	lo.Must0(viper.BindPFlag(key.ShellPrompt, rootCmd.Flags().Lookup("prompt")))

	rootCmd.Flags().Bool("menu", true, "Print the command menu on start")
	lo.Must0(viper.BindPFlag(key.ShellMenuOnStart, rootCmd.Flags().Lookup("menu")))

	rootCmd.Flags().Bool("force-prompt", false, "Print prompts even when input is not a terminal")
	lo.Must0(viper.BindPFlag(key.ShellForcePrompt, rootCmd.Flags().Lookup("force-prompt")))
}

func completionKinds(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(stack.Kinds(), func(k stack.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
}

// rootCmd starts the interactive shell.
var rootCmd = &cobra.Command{
	Use:   constant.Stackr,
	Short: "An interactive shell for bounded and unbounded integer stacks",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - An interactive shell for bounded and unbounded integer stacks"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		terminal := util.IsTerminal(os.Stdin)
		ask := terminal && !lo.Must(cmd.Flags().GetBool("yes"))

		kind, err := resolveKind(ask && !cmd.Flags().Changed("kind"))
		handleErr(err)

		capacity, err := resolveCapacity(kind, ask && !cmd.Flags().Changed("capacity"))
		handleErr(err)

		s, err := stack.New(kind, capacity, stackOptions()...)
		handleErr(err)
		log.Infof("starting shell with %s stack", kind)

		width := 0
		if terminal {
			if w, _, err := util.TerminalSize(); err == nil {
				width = w
			}
		}

		sh := shell.New(os.Stdin, os.Stdout, shell.Options{
			Kind:         kind,
			Initial:      mo.Some(s),
			StackOptions: stackOptions(),
			Prompt:       viper.GetString(key.ShellPrompt),
			ShowMenu:     viper.GetBool(key.ShellMenuOnStart),
			Interactive:  promptsEnabled(terminal),
			SaveHistory:  viper.GetBool(key.ShellSaveHistory),
			Width:        width,
		})
		handleErr(sh.Run())
	},
}

// promptsEnabled reports whether the shell prints prompts.
func promptsEnabled(terminal bool) bool {
	return terminal || viper.GetBool(key.ShellForcePrompt)
}

// stackOptions maps the configured limits onto stack construction options.
func stackOptions() []stack.Option {
	return []stack.Option{
		stack.WithMaxCapacity(viper.GetInt(key.StackMaxCapacity)),
		stack.WithNodeLimit(viper.GetInt(key.StackNodeLimit)),
	}
}

func resolveKind(ask bool) (stack.Kind, error) {
	configured := viper.GetString(key.StackDefaultKind)
	if !ask {
		return stack.ParseKind(configured)
	}

	kinds := lo.Map(stack.Kinds(), func(k stack.Kind, _ int) string { return string(k) })
	selected := configured
	if !lo.Contains(kinds, selected) {
		selected = kinds[0]
	}

	prompt := &survey.Select{
		Message: "Which stack do you want to create?",
		Options: kinds,
		Default: selected,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return stack.ParseKind(selected)
}

func resolveCapacity(kind stack.Kind, ask bool) (int, error) {
	configured := viper.GetInt(key.StackDefaultCapacity)
	if kind != stack.KindBounded || !ask {
		return configured, nil
	}

	var answer string
	prompt := &survey.Input{
		Message: "Enter the size of the stack:",
		Default: strconv.Itoa(configured),
	}
	err := survey.AskOne(prompt, &answer, survey.WithValidator(func(ans interface{}) error {
		n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(ans)))
		if err != nil {
			return errors.New("expected an integer")
		}
		if n <= 0 {
			return errors.New("size must be positive")
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(answer))
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
