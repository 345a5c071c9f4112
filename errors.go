package rtree

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in doc.go.

*/

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rtree: invalid configuration")
	// ErrTreeTooDeep signals that an insertion descent exhausted the
	// configured maximum tree depth.
	ErrTreeTooDeep = errors.New("rtree: maximum tree depth exceeded")
	// ErrUnderflowAtAncestor signals an erase operation that would underflow
	// a directory node above the dissolved leaf. This removal path is not
	// supported; the tree is left unchanged.
	ErrUnderflowAtAncestor = errors.New("rtree: erase underflows an ancestor directory")
	// ErrIntegrity signals a violated structural invariant.
	ErrIntegrity = errors.New("rtree: tree integrity violated")
	// ErrUnknownNodeType signals an internal node of unexpected type,
	// indicating a corrupted tree. Erase also returns it for a cursor that
	// does not point at a value node of the tree.
	ErrUnknownNodeType = errors.New("rtree: unknown node type")
)
