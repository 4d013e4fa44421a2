package generator

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInput         ErrorKind = "input"
	KindUpstreamText  ErrorKind = "upstream_text"
	KindUpstreamImage ErrorKind = "upstream_image"
	KindUnexpected    ErrorKind = "unexpected"
)

var (
	ErrEmptyResponse   = errors.New("no response from model")
	ErrSchemaViolation = errors.New("response does not match the content schema")
	ErrNoImage         = errors.New("no image in response")
)

// GenerationError 는 생성 단계에서 발생한 오류를 종류와 함께 감싼다.
type GenerationError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return "generation failed"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, op string, err error) *GenerationError {
	return &GenerationError{Kind: kind, Op: op, Err: err}
}

// IsKind 는 err 체인에 주어진 종류의 GenerationError 가 있는지 확인한다.
func IsKind(err error, kind ErrorKind) bool {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind == kind
	}
	return false
}
