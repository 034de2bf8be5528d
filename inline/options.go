// Package inline runs a fixed sequence of stack operations without user interaction.
package inline

import (
	"github.com/stackr-cli/stackr/stack"
)

// Options configures an inline run.
type Options struct {
	Kind     stack.Kind
	Capacity int
	// Ops are command lines such as "push 10" or "pop", applied in order.
	Ops          []string
	Json         bool
	StackOptions []stack.Option
}
