package store

import "errors"

var (
	// ErrNoFreeFileName is returned when every de-duplicated variant of a
	// download name is already taken.
	ErrNoFreeFileName = errors.New("no free file name for download")
	// ErrNotRegularFile is returned when a picked path is a directory or a
	// special file.
	ErrNotRegularFile = errors.New("not a regular file")
)
