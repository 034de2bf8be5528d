package stack

import (
	"fmt"

	"github.com/samber/mo"
)

// Bounded is an array-backed stack whose capacity is fixed at construction.
// Slots above top may hold stale values and are never read as present.
type Bounded struct {
	storage []int
	top     int
}

// NewBounded allocates a stack with room for capacity elements.
func NewBounded(capacity int, opts ...Option) (*Bounded, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	if capacity > o.maxCapacity {
		return nil, fmt.Errorf("%w: capacity %d exceeds limit %d", ErrAllocationFailure, capacity, o.maxCapacity)
	}

	storage, err := allocate(capacity)
	if err != nil {
		return nil, err
	}

	return &Bounded{storage: storage, top: -1}, nil
}

// allocate turns a length the runtime rejects outright into ErrAllocationFailure.
// It cannot catch running out of memory, which is why capacities are capped first.
func allocate(capacity int) (buf []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()

	return make([]int, capacity), nil
}

func (s *Bounded) valid() bool {
	return s != nil && s.storage != nil
}

// Kind returns KindBounded.
func (s *Bounded) Kind() Kind {
	return KindBounded
}

// Capacity returns the fixed number of slots, or 0 for an invalid handle.
func (s *Bounded) Capacity() int {
	if !s.valid() {
		return 0
	}
	return len(s.storage)
}

// Push stores value on top. A full stack is left untouched.
func (s *Bounded) Push(value int) error {
	if !s.valid() {
		return ErrInvalidHandle
	}
	if s.top == len(s.storage)-1 {
		return ErrCapacityExceeded
	}

	s.top++
	s.storage[s.top] = value
	return nil
}

// Pop removes and returns the top value.
func (s *Bounded) Pop() (int, error) {
	value, err := s.Peek()
	if err != nil {
		return 0, err
	}

	s.top--
	return value, nil
}

// Peek returns the top value without removing it.
func (s *Bounded) Peek() (int, error) {
	if !s.valid() {
		return 0, ErrInvalidHandle
	}
	if s.top == -1 {
		return 0, ErrUnderflow
	}
	return s.storage[s.top], nil
}

// IsEmpty reports whether no elements are present. Invalid handles are reported as empty.
func (s *Bounded) IsEmpty() bool {
	return !s.valid() || s.top == -1
}

// IsFull reports whether a push would overflow. Invalid handles are reported as full.
func (s *Bounded) IsFull() bool {
	return !s.valid() || s.top == len(s.storage)-1
}

// Len returns the number of present elements.
func (s *Bounded) Len() int {
	if !s.valid() {
		return 0
	}
	return s.top + 1
}

// Search scans from the bottom up and returns the index of the first match.
func (s *Bounded) Search(value int) mo.Option[int] {
	if !s.valid() {
		return mo.None[int]()
	}

	for i := 0; i <= s.top; i++ {
		if s.storage[i] == value {
			return mo.Some(i)
		}
	}
	return mo.None[int]()
}

// Values returns a copy of the present elements, bottom to top.
func (s *Bounded) Values() []int {
	if !s.valid() {
		return nil
	}

	values := make([]int, s.top+1)
	copy(values, s.storage[:s.top+1])
	return values
}

// Render lists present elements bottom to top, e.g. "[1, 2, 3]".
func (s *Bounded) Render() (string, error) {
	if !s.valid() {
		return "", ErrInvalidHandle
	}
	return render(s.storage[:s.top+1]), nil
}

func (s *Bounded) String() string {
	if r, err := s.Render(); err == nil {
		return r
	}
	return invalidRepr
}

// Destroy releases the storage. Further calls report ErrInvalidHandle.
func (s *Bounded) Destroy() (int, error) {
	if !s.valid() {
		return 0, ErrInvalidHandle
	}

	released := s.top + 1
	s.storage = nil
	s.top = -1
	return released, nil
}
