package chat

import (
	"context"
	"fmt"
)

// Generator synthesizes the assistant reply for a message. seq is the
// position of the message in the principal's history (1-based), so a given
// (message, seq) pair always produces the same reply for deterministic
// implementations.
type Generator interface {
	Generate(ctx context.Context, message string, seq int) (string, error)
}

// TemplateGenerator echoes the input back. It is the deterministic default
// used when no model provider is configured.
type TemplateGenerator struct{}

func (TemplateGenerator) Generate(_ context.Context, message string, seq int) (string, error) {
	return fmt.Sprintf("I am an AI. You said: %q. (Message %d)", message, seq), nil
}
