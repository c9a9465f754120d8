package parsers

import "errors"

var (
	// ErrFileNotFound indicates the input path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFileType indicates no parser handles the file extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrMalformedInput wraps any content that could not be turned into an event.
	ErrMalformedInput = errors.New("malformed input")
)
