package types

import "errors"

// Table construction and query errors.
var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrInvalidCount    = errors.New("row count must be non-negative")
	ErrInvalidWidth    = errors.New("table must have at least one column")
	ErrEmptyTable      = errors.New("table has no rows")
)

// Run-ledger errors.
var (
	ErrNotFound        = errors.New("run not found")
	ErrInvalidID       = errors.New("invalid run ID")
	ErrInvalidLayout   = errors.New("invalid layout value")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrAlreadyAttached = errors.New("store already attached")
	ErrStoreDetached   = errors.New("store is not attached")
)
