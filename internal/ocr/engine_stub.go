//go:build !ocr

package ocr

import "context"

// Engine is unavailable without the "ocr" build tag.
type Engine struct{}

// NewEngine always fails in this build.
func NewEngine() (*Engine, error) { return nil, ErrNotEnabled }

// Close is a no-op in this build.
func (e *Engine) Close() error { return nil }

// Recognize is unreachable in this build; NewEngine never succeeds.
func (e *Engine) Recognize(_ context.Context, _ []byte) (string, error) {
	return "", ErrNotEnabled
}

var _ Recognizer = (*Engine)(nil)
