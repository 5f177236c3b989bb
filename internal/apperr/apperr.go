package apperr

import (
	"errors"
	"fmt"
)

// Kind names the pipeline step a failure came from. The delivery layer maps
// kinds to HTTP statuses exactly once; nothing else inspects error text.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindTranscription Kind = "transcription"
	KindLLM           Kind = "llm"
	KindSynthesis     Kind = "synthesis"
	KindFileIO        Kind = "file_io"
)

type Error struct {
	Kind Kind
	Op   string // originating operation, e.g. "deepgram transcribe"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the tagged kind of err, or "" for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// OpOf returns the originating operation of err, or "" for untagged errors.
func OpOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}
