package constants

import (
	"fmt"
	"strings"
)

// Backend identifies the NLP runtime a model profile is bound to.
type Backend string

const (
	BackendSpacy       Backend = "spacy"
	BackendHuggingFace Backend = "huggingface"
	BackendLasUIE      Backend = "lasuie"
	BackendAllenNLP    Backend = "allennlp"
)

var allBackends = []Backend{
	BackendSpacy,
	BackendHuggingFace,
	BackendLasUIE,
	BackendAllenNLP,
}

// Backends returns the known backend tags as strings.
func Backends() []string {
	result := make([]string, len(allBackends))
	for i, b := range allBackends {
		result[i] = string(b)
	}
	return result
}

// ParseBackend resolves a backend tag from configuration input.
func ParseBackend(input string) (Backend, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, b := range allBackends {
		if normalized == string(b) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q (known: %s)", input, strings.Join(Backends(), ", "))
}
