package ownership

import (
	"errors"
	"fmt"
)

var (
	// ErrUseAfterMove signals access to a value whose ownership has been transferred.
	ErrUseAfterMove = errors.New("ownership: use of moved value")
	// ErrBorrowConflict signals a borrow incompatible with an outstanding borrow.
	ErrBorrowConflict = errors.New("ownership: conflicting borrow")
)

// Violation is the panic value for fatal ownership and access conditions.
//
// Op names the operation which has been refused, Err is one of the sentinel
// errors of this package or of a container package.
type Violation struct {
	Op  string
	Err error
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %v", v.Op, v.Err)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Fatal panics with a Violation for operation op.
func Fatal(op string, err error) {
	tracer().Errorf("fatal: %s: %v", op, err)
	panic(&Violation{Op: op, Err: err})
}

// Recover calls f and reports a Violation raised by f as an error.
// Panics with other values are passed on unchanged.
func Recover(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*Violation)
			if !ok {
				panic(r)
			}
			err = v
		}
	}()
	f()
	return nil
}
