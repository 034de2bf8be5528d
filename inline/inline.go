package inline

import (
	"fmt"
	"io"

	logrus "github.com/sirupsen/logrus"
	"github.com/stackr-cli/stackr/command"
	"github.com/stackr-cli/stackr/log"
	"github.com/stackr-cli/stackr/stack"
)

// Run builds a stack, applies every operation and writes the transcript to w.
// All operations are parsed before any is applied. A failing operation is
// reported in its step and does not stop the run.
func Run(w io.Writer, options *Options) error {
	commands := make([]command.Command, len(options.Ops))
	for i, op := range options.Ops {
		c, err := command.Parse(op)
		if err != nil {
			return fmt.Errorf("op %d %q: %w", i+1, op, err)
		}
		if !isStackOperation(c.Name) {
			return fmt.Errorf("op %d %q: %s is only available in the shell", i+1, op, c.Name)
		}
		commands[i] = c
	}

	s, err := stack.New(options.Kind, options.Capacity, options.StackOptions...)
	if err != nil {
		return err
	}

	output := &Output{
		Kind:  string(options.Kind),
		Steps: make([]*Step, len(commands)),
	}
	if b, ok := s.(*stack.Bounded); ok {
		output.Capacity = b.Capacity()
	}

	for i, c := range commands {
		result := command.Apply(s, c)
		output.Steps[i] = toStep(options.Ops[i], result)

		log.WithFields(logrus.Fields{
			"op":    options.Ops[i],
			"state": result.State,
		}).Debug("inline step")
	}

	output.Final = s.Values()
	if output.Final == nil {
		output.Final = []int{}
	}

	if options.Json {
		return writeJson(w, output)
	}
	return writeText(w, output, commands, s.String())
}

func isStackOperation(name command.Name) bool {
	switch name {
	case command.Help, command.New, command.History, command.Clear, command.Quit:
		return false
	default:
		return true
	}
}

func toStep(op string, r command.Result) *Step {
	step := &Step{Op: op, State: r.State}

	if r.Err != nil {
		step.Error = r.Message()
		return step
	}

	if v, ok := r.Value.Get(); ok {
		step.Value = &v
	}
	if i, ok := r.Index.Get(); ok {
		step.Index = &i
	}
	if e, ok := r.Empty.Get(); ok {
		step.Empty = &e
	}
	return step
}

func writeText(w io.Writer, output *Output, commands []command.Command, final string) error {
	for i, step := range output.Steps {
		line := step.Error
		if line == "" {
			line = describe(commands[i].Name, step)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", step.Op, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, final)
	return err
}

func describe(name command.Name, step *Step) string {
	switch {
	case step.Index != nil:
		return fmt.Sprintf("index %d", *step.Index)
	case name == command.Search:
		return "not found"
	case step.Empty != nil:
		return fmt.Sprint(*step.Empty)
	case step.Value != nil:
		return fmt.Sprint(*step.Value)
	case name == command.Display:
		return step.State
	default:
		return "ok"
	}
}
