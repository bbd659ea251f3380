package commons

import "errors"

var (
	ErrRecordNotFound      = errors.New("Record not found")
	ErrDuplicateEmail      = errors.New("An account with this email already exists")
	ErrDuplicateDocument   = errors.New("An account with this CPF already exists")
	ErrSameAccount         = errors.New("Source and destination accounts cannot be the same")
	ErrInsufficientBalance = errors.New("Insufficient balance")
	ErrVersionConflict     = errors.New("Account was modified concurrently")
)
