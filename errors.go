package forwardlist

import (
	"github.com/pkg/errors"
)

var (
	// ErrAlreadyDeleted is the cause of the panic raised when a node that was
	// just unlinked by the caller turns out to be marked deleted already.
	// It means list integrity can no longer be trusted.
	ErrAlreadyDeleted = errors.New("node is already marked as deleted")

	// ErrEndIterator is the cause of the panic raised when dereferencing the
	// End or BeforeBegin position.
	ErrEndIterator = errors.New("dereference of a position without a value")
)

func invariant(op string) {
	panic(errors.Wrapf(ErrAlreadyDeleted, "%s", op))
}
