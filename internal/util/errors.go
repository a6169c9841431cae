package util

import "errors"

var (
	ErrInvalidKey       = errors.New("invalid or deactivated key")
	ErrKeyExists        = errors.New("access key already exists")
	ErrProtectedKey     = errors.New("the bootstrap admin key cannot be deleted")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrProgressNotFound = errors.New("progress not found")
)
