//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Engine wraps a Tesseract client. It is not safe for concurrent use; the
// pipeline recognizes pages sequentially.
type Engine struct {
	client *gosseract.Client
}

// NewEngine creates a Tesseract-backed recognizer configured for simplified
// Chinese plus English, the script mix of the source textbook.
func NewEngine() (*Engine, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage("chi_sim", "eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("set ocr languages: %w", err)
	}
	return &Engine{client: client}, nil
}

// Close releases the Tesseract resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Recognize performs OCR on one page image.
func (e *Engine) Recognize(_ context.Context, image []byte) (string, error) {
	if err := e.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return strings.TrimSpace(text), nil
}

var _ Recognizer = (*Engine)(nil)
