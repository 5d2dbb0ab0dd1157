package ai

import "context"

// CompletionRequest is a single prompt sent to a model.
type CompletionRequest struct {
	Prompt      string
	System      string
	Temperature float32
	// JSON asks the model to answer with a JSON document only.
	JSON bool
}

type CompletionResponse struct {
	Text  string
	Usage TokenUsage
	Model string
}

type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Provider is a generative model backend.
type Provider interface {
	ID() string
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
