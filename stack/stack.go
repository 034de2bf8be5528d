// Package stack provides last-in-first-out containers of integers in two flavours:
// a fixed-capacity array-backed stack and a linked, memory-bound stack.
package stack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Kind identifies a stack implementation.
type Kind string

const (
	KindBounded   Kind = "bounded"
	KindUnbounded Kind = "unbounded"
)

// Kinds returns all supported stack kinds.
func Kinds() []Kind {
	return []Kind{KindBounded, KindUnbounded}
}

// ParseKind resolves a kind name. The legacy names "fixed" and "dynamic" are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(KindBounded), "fixed":
		return KindBounded, nil
	case string(KindUnbounded), "dynamic":
		return KindUnbounded, nil
	default:
		return "", fmt.Errorf("unknown stack kind %q", name)
	}
}

// Stack is the operation set shared by both implementations.
type Stack interface {
	Kind() Kind
	Push(value int) error
	Pop() (int, error)
	Peek() (int, error)
	IsEmpty() bool
	Len() int
	// Search returns the bottom-to-top index of the first element equal to value.
	Search(value int) mo.Option[int]
	// Values returns a copy of the present elements, bottom to top.
	Values() []int
	Render() (string, error)
	String() string
	// Destroy releases the storage and reports how many elements were still present.
	Destroy() (int, error)
}

var (
	_ Stack = (*Bounded)(nil)
	_ Stack = (*Unbounded)(nil)
)

// New creates a stack of the given kind. Capacity is only meaningful for bounded stacks.
func New(kind Kind, capacity int, opts ...Option) (Stack, error) {
	switch kind {
	case KindBounded:
		return NewBounded(capacity, opts...)
	case KindUnbounded:
		return NewUnbounded(opts...)
	default:
		return nil, fmt.Errorf("unknown stack kind %q", kind)
	}
}

// Errors reported by stack operations.
var (
	ErrAllocationFailure = errors.New("allocation failure")
	ErrCapacityExceeded  = errors.New("stack overflow")
	ErrUnderflow         = errors.New("stack underflow")
	ErrInvalidHandle     = errors.New("invalid stack handle")
	ErrInvalidCapacity   = errors.New("invalid capacity")
)

// Option configures stack construction.
type Option func(*options)

type options struct {
	maxCapacity int
	nodeLimit   int
}

// DefaultMaxCapacity is the largest bounded capacity accepted when no other limit is set.
// Requests above it fail with ErrAllocationFailure before anything is allocated.
const DefaultMaxCapacity = 1 << 24

// WithMaxCapacity rejects bounded stacks larger than n with ErrAllocationFailure.
// Zero selects DefaultMaxCapacity.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.maxCapacity = n
	}
}

// WithNodeLimit makes unbounded pushes beyond n elements fail with ErrAllocationFailure. Zero means no limit.
func WithNodeLimit(n int) Option {
	return func(o *options) {
		o.nodeLimit = n
	}
}

func buildOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.maxCapacity < 0 {
		return o, fmt.Errorf("%w: max capacity %d", ErrInvalidCapacity, o.maxCapacity)
	}
	if o.nodeLimit < 0 {
		return o, fmt.Errorf("%w: node limit %d", ErrInvalidCapacity, o.nodeLimit)
	}
	if o.maxCapacity == 0 {
		o.maxCapacity = DefaultMaxCapacity
	}

	return o, nil
}

// render formats values as "[a, b, c]".
func render(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

const invalidRepr = "<invalid>"
