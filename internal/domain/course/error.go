package course

import "errors"

var (
	ErrNotFound       = errors.New("course not found")
	ErrInvalidForm    = errors.New("course form failed validation")
	ErrNoServerID     = errors.New("entity has no server id")
	ErrOrphanedLesson = errors.New("lesson parent section not created yet")
)
