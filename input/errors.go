package input

import "errors"

var (
	ErrEmptyName       = errors.New("input: action name is empty")
	ErrNilAction       = errors.New("input: action is nil")
	ErrDuplicateAction = errors.New("input: action already registered")
	ErrUnknownName     = errors.New("input: unknown name")
)
