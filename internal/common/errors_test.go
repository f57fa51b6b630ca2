package common

import (
	"errors"
	"strings"
	"testing"
)

func TestAppErrorFormatting(t *testing.T) {
	e := NewAppError("SOME_CODE", "something broke", nil)
	if got := e.Error(); got != "SOME_CODE: something broke" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := NewAppError("SOME_CODE", "something broke", errors.New("root cause"))
	if !strings.Contains(wrapped.Error(), "root cause") {
		t.Errorf("Error() = %q, want cause included", wrapped.Error())
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("underlying")
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"configuration", NewConfigurationError("bad profile"), ErrConfiguration},
		{"model load", NewModelLoadError("spacy missing", cause), ErrModelLoad},
		{"model load no cause", NewModelLoadError("spacy missing", nil), ErrModelLoad},
		{"extraction", NewExtractionError("runtime crashed", cause), ErrExtractionRuntime},
		{"remote", NewRemoteServiceError("peer status 500", cause), ErrRemoteService},
		{"remote no cause", NewRemoteServiceError("timeout", nil), ErrRemoteService},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			var appErr *AppError
			if !errors.As(tt.err, &appErr) {
				t.Error("error is not an *AppError")
			}
		})
	}

	// the original cause stays reachable through the sentinel wrapping
	err := NewExtractionError("runtime crashed", cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should be nil")
	}
	base := errors.New("base")
	wrapped := WrapError(base, "reading config")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its base")
	}
	if !strings.HasPrefix(wrapped.Error(), "reading config: ") {
		t.Errorf("wrapped = %q", wrapped.Error())
	}
}
