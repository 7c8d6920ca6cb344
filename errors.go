package obtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration, such as an order below 3.
	ErrInvalidConfig = errors.New("obtree: invalid configuration")
	// ErrIndexOutOfBounds signals a rank outside [0, count).
	ErrIndexOutOfBounds = errors.New("obtree: rank out of bounds")
	// ErrKeyExists signals that insert was called for a key already present.
	ErrKeyExists = errors.New("obtree: key already exists")
	// ErrOutOfOrder signals that a bulk-append key was not strictly greater than
	// the tree's current maximum key.
	ErrOutOfOrder = errors.New("obtree: append key is not strictly ascending")
	// ErrDuplicateKey signals a duplicate key found while building a tree from
	// an unsorted sequence with FromSlice. FromSorted and AppendSorted report a
	// repeated key as ErrOutOfOrder.
	ErrDuplicateKey = errors.New("obtree: duplicate key in input sequence")
)
