package command

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/mo"
	"github.com/stackr-cli/stackr/stack"
	"github.com/stackr-cli/stackr/util"
)

// ErrNotStackOperation is returned by Apply for commands handled by the caller (help, new, quit, ...).
var ErrNotStackOperation = errors.New("not a stack operation")

// Result is the outcome of applying a command to a stack.
type Result struct {
	Command Name
	Arg     mo.Option[int]
	// Value holds the popped or peeked element, the size, or the number of released elements.
	Value mo.Option[int]
	// Index holds the search hit.
	Index mo.Option[int]
	// Empty holds the isempty answer.
	Empty mo.Option[bool]
	// Capacity is present for bounded stacks answering size.
	Capacity mo.Option[int]
	State    string
	Err      error
}

type capacitor interface {
	Capacity() int
}

// Apply executes a stack operation. Errors from the stack are carried in the result, never returned.
func Apply(s stack.Stack, c Command) Result {
	r := Result{Command: c.Name}

	switch c.Name {
	case Push, Search:
		arg, err := c.Arg()
		if err != nil {
			r.Err = err
			return r
		}
		r.Arg = mo.Some(arg)

		if c.Name == Push {
			r.Err = s.Push(arg)
		} else {
			r.Index = s.Search(arg)
		}
	case Pop:
		r.Value, r.Err = optional(s.Pop())
	case Peek:
		r.Value, r.Err = optional(s.Peek())
	case Size:
		r.Value = mo.Some(s.Len())
		if b, ok := s.(capacitor); ok {
			r.Capacity = mo.Some(b.Capacity())
		}
	case IsEmpty:
		r.Empty = mo.Some(s.IsEmpty())
	case Display:
		r.State, r.Err = s.Render()
		return r
	case Destroy:
		r.Value, r.Err = optional(s.Destroy())
		return r
	default:
		r.Err = fmt.Errorf("%w: %s", ErrNotStackOperation, c.Name)
		return r
	}

	r.State = s.String()
	return r
}

func optional(value int, err error) (mo.Option[int], error) {
	if err != nil {
		return mo.None[int](), err
	}
	return mo.Some(value), nil
}

// Message renders the result as a single human-readable line.
func (r Result) Message() string {
	if r.Err != nil {
		switch {
		case errors.Is(r.Err, stack.ErrCapacityExceeded):
			return fmt.Sprintf("stack overflow: cannot push %d", r.Arg.OrEmpty())
		case errors.Is(r.Err, stack.ErrUnderflow):
			return "stack underflow: the stack is empty"
		case errors.Is(r.Err, stack.ErrInvalidHandle):
			return "no stack, use new to create one"
		case errors.Is(r.Err, stack.ErrAllocationFailure):
			return "out of memory: " + r.Err.Error()
		default:
			return r.Err.Error()
		}
	}

	switch r.Command {
	case Push:
		return fmt.Sprintf("pushed %d", r.Arg.OrEmpty())
	case Pop:
		return fmt.Sprintf("popped %d", r.Value.OrEmpty())
	case Peek:
		return fmt.Sprintf("top is %d", r.Value.OrEmpty())
	case Size:
		if capacity, ok := r.Capacity.Get(); ok {
			return fmt.Sprintf("size %d of %d", r.Value.OrEmpty(), capacity)
		}
		return "size " + strconv.Itoa(r.Value.OrEmpty())
	case IsEmpty:
		if r.Empty.OrEmpty() {
			return "empty"
		}
		return "not empty"
	case Search:
		if index, ok := r.Index.Get(); ok {
			return fmt.Sprintf("found %d at index %d", r.Arg.OrEmpty(), index)
		}
		return fmt.Sprintf("%d not found", r.Arg.OrEmpty())
	case Display:
		return r.State
	case Destroy:
		return "destroyed, released " + util.Quantify(r.Value.OrEmpty(), "element", "elements")
	default:
		return ""
	}
}
