// Package shell implements the interactive, line-oriented stack shell.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
	logrus "github.com/sirupsen/logrus"
	"github.com/stackr-cli/stackr/command"
	"github.com/stackr-cli/stackr/history"
	"github.com/stackr-cli/stackr/icon"
	"github.com/stackr-cli/stackr/log"
	"github.com/stackr-cli/stackr/stack"
	"github.com/stackr-cli/stackr/style"
	"github.com/stackr-cli/stackr/util"
)

// Options configures a shell session.
type Options struct {
	// Kind is the default offered when new asks for a kind.
	Kind stack.Kind
	// Initial is the stack the session starts with.
	Initial      mo.Option[stack.Stack]
	StackOptions []stack.Option
	Prompt       string
	ShowMenu     bool
	// Interactive prints prompts and enables screen clearing. It is set for terminals or when forced.
	Interactive bool
	SaveHistory bool
	// Width wraps the menu. Zero means no wrapping.
	Width int
}

// Shell reads commands line by line and applies them to the current stack.
type Shell struct {
	options Options
	scanner *bufio.Scanner
	out     io.Writer
	current mo.Option[stack.Stack]
}

// New creates a shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, options Options) *Shell {
	if options.Kind == "" {
		options.Kind = stack.KindBounded
	}

	return &Shell{
		options: options,
		scanner: bufio.NewScanner(in),
		out:     out,
		current: options.Initial,
	}
}

// Current returns the stack the shell operates on, if any.
func (sh *Shell) Current() mo.Option[stack.Stack] {
	return sh.current
}

// Run processes input until quit or end of input.
func (sh *Shell) Run() error {
	if sh.options.ShowMenu {
		sh.menu()
	}

	for {
		line, ok := sh.readLine(sh.options.Prompt)
		if !ok {
			sh.release()
			return sh.scanner.Err()
		}

		cmd, err := command.Parse(line)
		if errors.Is(err, command.ErrEmptyLine) {
			continue
		}
		if err != nil {
			sh.fail(err.Error())
			continue
		}

		if sh.options.SaveHistory {
			if err := history.Remember(line); err != nil {
				log.Warnf("remember %q: %s", line, err)
			}
		}

		if cmd.Name == command.Quit {
			sh.release()
			return nil
		}

		sh.execute(cmd)
	}
}

func (sh *Shell) execute(cmd command.Command) {
	switch cmd.Name {
	case command.Help:
		sh.menu()
	case command.New:
		sh.create(cmd.Args)
	case command.History:
		sh.listHistory()
	case command.Clear:
		if sh.options.Interactive {
			util.ClearScreen()
		}
	default:
		sh.apply(cmd)
	}
}

func (sh *Shell) apply(cmd command.Command) {
	s, ok := sh.current.Get()
	if !ok {
		sh.fail("no stack, use new to create one")
		return
	}

	if (cmd.Name == command.Push || cmd.Name == command.Search) && len(cmd.Args) == 0 {
		value, ok := sh.readInt(fmt.Sprintf("Enter the value to %s.\n%s", cmd.Name, sh.options.Prompt))
		if !ok {
			return
		}
		cmd.Args = []string{fmt.Sprint(value)}
	}

	result := command.Apply(s, cmd)
	log.WithFields(logrus.Fields{
		"command": cmd.Name,
		"kind":    s.Kind(),
		"state":   result.State,
	}).Debug("applied command")

	if result.Err != nil {
		sh.fail(result.Message())
		return
	}

	if cmd.Name == command.Destroy {
		sh.current = mo.None[stack.Stack]()
	}

	sh.succeed(iconFor(cmd.Name), result.Message())
}

// create builds a new stack from optional kind and capacity arguments, prompting
// for a missing kind and a missing bounded capacity. The previous stack is
// released only on success.
func (sh *Shell) create(args []string) {
	kind := mo.None[stack.Kind]()
	capacity := mo.None[int]()

	for _, arg := range args {
		if k, err := stack.ParseKind(arg); err == nil {
			kind = mo.Some(k)
			continue
		}

		value, err := command.ParseValue(arg)
		if err != nil {
			sh.fail(fmt.Sprintf("invalid argument %q: expected a stack kind or a capacity", arg))
			return
		}
		capacity = mo.Some(value)
	}

	// A bare capacity implies a bounded stack.
	if kind.IsAbsent() && capacity.IsPresent() {
		kind = mo.Some(stack.KindBounded)
	}
	if kind.IsAbsent() {
		k, ok := sh.readKind()
		if !ok {
			return
		}
		kind = mo.Some(k)
	}

	if kind.MustGet() == stack.KindBounded && capacity.IsAbsent() {
		for {
			value, ok := sh.readInt("Enter the size of the stack. (Enter 0 to cancel.)\n" + sh.options.Prompt)
			if !ok {
				return
			}
			if value == 0 {
				sh.fail("stack creation cancelled")
				return
			}
			if value < 0 {
				sh.fail("invalid input: size of the stack cannot be negative")
				continue
			}

			capacity = mo.Some(value)
			break
		}
	}

	s, err := stack.New(kind.MustGet(), capacity.OrEmpty(), sh.options.StackOptions...)
	if err != nil {
		log.Errorf("create %s stack: %s", kind.MustGet(), err)
		sh.fail("failed to create stack: " + err.Error())
		return
	}

	sh.release()
	sh.current = mo.Some(s)

	if b, ok := s.(*stack.Bounded); ok {
		sh.succeed(icon.Success, fmt.Sprintf("created bounded stack with capacity %d", b.Capacity()))
	} else {
		sh.succeed(icon.Success, fmt.Sprintf("created %s stack", s.Kind()))
	}
}

func (sh *Shell) listHistory() {
	lines, err := history.Get()
	if err != nil {
		sh.fail("read history: " + err.Error())
		return
	}

	if len(lines) == 0 {
		sh.succeed(icon.Empty, "history is empty")
		return
	}

	for i, line := range lines {
		fmt.Fprintf(sh.out, "%s %s\n", style.Faint(fmt.Sprintf("%3d", i+1)), line)
	}
}

// release destroys the current stack, if any.
func (sh *Shell) release() {
	if s, ok := sh.current.Get(); ok {
		if released, err := s.Destroy(); err == nil {
			log.Debugf("released %s stack with %d elements", s.Kind(), released)
		}
	}
	sh.current = mo.None[stack.Stack]()
}

func (sh *Shell) menu() {
	menu := command.Menu()
	if sh.options.Width > 0 {
		menu = wordwrap.String(menu, sh.options.Width)
	}
	fmt.Fprint(sh.out, menu)
	if !strings.HasSuffix(menu, "\n") {
		fmt.Fprintln(sh.out)
	}
}

// readLine prints prompt in interactive mode and returns the next input line.
func (sh *Shell) readLine(prompt string) (string, bool) {
	if sh.options.Interactive {
		fmt.Fprint(sh.out, prompt)
	}

	if !sh.scanner.Scan() {
		return "", false
	}
	return sh.scanner.Text(), true
}

// readKind prompts until a stack kind is entered or input ends. An empty answer selects the default kind.
func (sh *Shell) readKind() (stack.Kind, bool) {
	kinds := lo.Map(stack.Kinds(), func(k stack.Kind, _ int) string { return string(k) })
	prompt := fmt.Sprintf("Enter the kind of the stack (%s). Leave empty for %s.\n%s",
		strings.Join(kinds, ", "), sh.options.Kind, sh.options.Prompt)

	for {
		line, ok := sh.readLine(prompt)
		if !ok {
			return "", false
		}

		if strings.TrimSpace(line) == "" {
			return sh.options.Kind, true
		}

		kind, err := stack.ParseKind(line)
		if err == nil {
			return kind, true
		}
		sh.fail("invalid input: expected a stack kind")
	}
}

// readInt prompts until an integer is entered or input ends.
func (sh *Shell) readInt(prompt string) (int, bool) {
	for {
		line, ok := sh.readLine(prompt)
		if !ok {
			return 0, false
		}

		value, err := command.ParseValue(line)
		if err == nil {
			return value, true
		}
		sh.fail("invalid input: expected an integer")
	}
}

func (sh *Shell) succeed(i icon.Icon, msg string) {
	fmt.Fprintf(sh.out, "%s %s\n", icon.Get(i), style.Value(msg))
}

func (sh *Shell) fail(msg string) {
	log.Warn(msg)
	fmt.Fprintf(sh.out, "%s %s\n", icon.Get(icon.Fail), style.Failure(msg))
}

var icons = map[command.Name]icon.Icon{
	command.Push:    icon.Push,
	command.Pop:     icon.Pop,
	command.Peek:    icon.Peek,
	command.Search:  icon.Search,
	command.IsEmpty: icon.Empty,
}

func iconFor(name command.Name) icon.Icon {
	return lo.ValueOr(icons, name, icon.Success)
}
