package uidebug

import "errors"

var (
	// ErrOwnerAbsent is returned when a binding's owner provider yields nothing.
	ErrOwnerAbsent = errors.New("owner absent")
	// ErrNotStruct is returned when a type has no struct fields to inspect.
	ErrNotStruct = errors.New("not a struct")
	// ErrFieldAccess wraps reflective failures to read or write a field.
	ErrFieldAccess = errors.New("field access failed")
	// ErrParse wraps converter failures on user input.
	ErrParse = errors.New("cannot parse value")
)
