package ownership

import "sync"

// State is the borrow and move state of a single container.
//
// A State created by
//
//	State{}
//
// is an owned value without outstanding borrows. A State must not be copied
// after first use.
type State struct {
	mu      sync.Mutex
	readers int
	writer  bool
	moved   bool
}

// Check panics with ErrUseAfterMove if the owner has been moved away.
func (s *State) Check(op string) {
	s.mu.Lock()
	moved := s.moved
	s.mu.Unlock()
	if moved {
		Fatal(op, ErrUseAfterMove)
	}
}

// IsMoved reports whether ownership has been transferred away.
func (s *State) IsMoved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moved
}

// Readers returns the number of outstanding shared borrows.
func (s *State) Readers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readers
}

// IsExclusive reports whether an exclusive borrow is held.
func (s *State) IsExclusive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer
}

// Share acquires a shared borrow for operation op. The returned function
// gives the borrow back; calling it more than once has no further effect.
//
// Share is fatal if the value has been moved or an exclusive borrow is held.
func (s *State) Share(op string) (release func()) {
	s.mu.Lock()
	var err error
	switch {
	case s.moved:
		err = ErrUseAfterMove
	case s.writer:
		err = ErrBorrowConflict
	default:
		s.readers++
	}
	s.mu.Unlock()
	if err != nil {
		Fatal(op, err)
	}
	return s.once(func() { s.readers-- })
}

// Exclusive acquires an exclusive borrow for operation op. The returned
// function gives the borrow back; calling it more than once has no further effect.
//
// Exclusive is fatal if the value has been moved or any borrow is outstanding.
func (s *State) Exclusive(op string) (release func()) {
	s.mu.Lock()
	var err error
	switch {
	case s.moved:
		err = ErrUseAfterMove
	case s.writer || s.readers > 0:
		err = ErrBorrowConflict
	default:
		s.writer = true
	}
	s.mu.Unlock()
	if err != nil {
		Fatal(op, err)
	}
	return s.once(func() { s.writer = false })
}

// Move transfers ownership away from the current handle. Every later access
// through the handle is fatal.
//
// Move is fatal if the value has already been moved or is borrowed: a value
// cannot be given away while someone still looks at it.
func (s *State) Move(op string) {
	s.mu.Lock()
	var err error
	switch {
	case s.moved:
		err = ErrUseAfterMove
	case s.writer || s.readers > 0:
		err = ErrBorrowConflict
	default:
		s.moved = true
	}
	s.mu.Unlock()
	if err != nil {
		Fatal(op, err)
	}
	tracer().Debugf("%s: ownership moved", op)
}

func (s *State) once(undo func()) func() {
	var done bool
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if done {
			return
		}
		done = true
		undo()
	}
}
