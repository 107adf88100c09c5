package genai

import "context"

// Package genai contains the client boundary for the external
// generative-language model used to answer questions about documents.

// Generator produces a natural-language completion for a prompt.
type Generator interface {
	// Generate sends the prompt to the model and returns its raw text
	// response. No retries are performed; a failed call surfaces as an error.
	Generate(ctx context.Context, prompt string) (string, error)
}
