package ports

import "context"

// Assistant is the generative backend for chat and student tools. Every
// caller must tolerate errors from Generate and fall back to curated
// content; an unreachable assistant never fails a request.
type Assistant interface {
	// Generate produces a completion for prompt. systemInstruction may be
	// empty.
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
	// Model reports the backing model name for audit columns.
	Model() string
}
