package service

import "errors"

var (
	// ErrNotPermitted is returned when the actor lacks the authorization a
	// single-record operation requires.
	ErrNotPermitted = errors.New("operation not permitted")
	// ErrInvalidCategory is returned when a save cannot resolve or create
	// its target category.
	ErrInvalidCategory = errors.New("category could not be resolved")
	// ErrBatchCategoryNotFound is returned when a batch copy targets a
	// missing or unset category.
	ErrBatchCategoryNotFound = errors.New("batch copy category not found")
	// ErrBatchCannotEdit is returned when the actor may not edit one of the
	// selected documents.
	ErrBatchCannotEdit = errors.New("cannot edit one of the selected documents")
	// ErrBatchCannotCreate is returned when the actor may not create in the
	// batch copy target category.
	ErrBatchCannotCreate = errors.New("cannot create documents in the target category")
)
