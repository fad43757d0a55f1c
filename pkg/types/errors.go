package types

import "errors"

// Domain errors for schema descriptor validation
var (
	ErrNegativeCount         = errors.New("type count must be non-negative")
	ErrDuplicateTypeName     = errors.New("type name appears more than once")
	ErrOrphanedTypeName      = errors.New("type name has no property index entry")
	ErrOrphanedPropertyEntry = errors.New("property index entry has no type count")
)
