package stack

import (
	"github.com/samber/mo"
)

// node is exclusively owned by the node above it, or by the stack when it is the top.
type node struct {
	value int
	next  *node
}

// Unbounded is a linked stack limited only by memory, or by an optional node limit.
type Unbounded struct {
	top       *node
	length    int
	limit     int
	destroyed bool
}

// NewUnbounded returns an empty stack.
func NewUnbounded(opts ...Option) (*Unbounded, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Unbounded{limit: o.nodeLimit}, nil
}

func (s *Unbounded) valid() bool {
	return s != nil && !s.destroyed
}

// Kind returns KindUnbounded.
func (s *Unbounded) Kind() Kind {
	return KindUnbounded
}

// Push links a new node holding value above the current top.
func (s *Unbounded) Push(value int) error {
	if !s.valid() {
		return ErrInvalidHandle
	}
	if s.limit > 0 && s.length >= s.limit {
		return ErrAllocationFailure
	}

	s.top = &node{value: value, next: s.top}
	s.length++
	return nil
}

// Pop detaches the top node and returns its value.
func (s *Unbounded) Pop() (int, error) {
	if !s.valid() {
		return 0, ErrInvalidHandle
	}
	if s.length == 0 {
		return 0, ErrUnderflow
	}

	detached := s.top
	s.top = detached.next
	detached.next = nil
	s.length--
	return detached.value, nil
}

// Peek returns the top value without removing it.
func (s *Unbounded) Peek() (int, error) {
	if !s.valid() {
		return 0, ErrInvalidHandle
	}
	if s.length == 0 {
		return 0, ErrUnderflow
	}
	return s.top.value, nil
}

// IsEmpty reports whether no elements are present. Invalid handles are reported as empty.
func (s *Unbounded) IsEmpty() bool {
	return !s.valid() || s.length == 0
}

// Len returns the number of nodes in the chain.
func (s *Unbounded) Len() int {
	if !s.valid() {
		return 0
	}
	return s.length
}

// Search returns the bottom-to-top index of the first match, mirroring Bounded.Search.
func (s *Unbounded) Search(value int) mo.Option[int] {
	found := mo.None[int]()
	if !s.valid() {
		return found
	}

	// The walk goes top-down, so the last hit is the bottom-most one.
	index := s.length - 1
	for n := s.top; n != nil; n = n.next {
		if n.value == value {
			found = mo.Some(index)
		}
		index--
	}
	return found
}

// Values returns a copy of the present elements, bottom to top.
func (s *Unbounded) Values() []int {
	if !s.valid() {
		return nil
	}

	values := make([]int, s.length)
	i := s.length - 1
	for n := s.top; n != nil; n = n.next {
		values[i] = n.value
		i--
	}
	return values
}

// Render lists present elements bottom to top, e.g. "[1, 2, 3]".
func (s *Unbounded) Render() (string, error) {
	if !s.valid() {
		return "", ErrInvalidHandle
	}
	return render(s.Values()), nil
}

func (s *Unbounded) String() string {
	if r, err := s.Render(); err == nil {
		return r
	}
	return invalidRepr
}

// Destroy unlinks every remaining node and reports how many were released.
// Further calls report ErrInvalidHandle.
func (s *Unbounded) Destroy() (int, error) {
	if !s.valid() {
		return 0, ErrInvalidHandle
	}

	var released int
	for s.top != nil {
		detached := s.top
		s.top = detached.next
		detached.next = nil
		released++
	}

	s.length = 0
	s.destroyed = true
	return released, nil
}
