package forms

import "errors"

var (
	ErrUnknownForm   = errors.New("unknown form")
	ErrDuplicateForm = errors.New("form already registered")
	ErrInvalidForm   = errors.New("invalid form")
	ErrDecodeInputs  = errors.New("failed to decode form inputs")
)
