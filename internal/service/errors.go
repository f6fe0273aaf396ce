package service

import "errors"

var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrMissingParent indicates a record references a parent that
	// does not exist in the store.
	ErrMissingParent = errors.New("parent record not found")
)
