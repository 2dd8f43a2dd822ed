// Package validation provides common validation utilities for the gobuf library.
//
// The helpers return *errors.ValidationError values with module and field
// context so constructors can report exactly which parameter was rejected.
package validation
