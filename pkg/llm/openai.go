package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/stridesec/threatmodel/pkg/config"
)

// OpenAIProvider is the fallback vision-capable provider. The client is
// constructed on first use.
type OpenAIProvider struct {
	cfg *config.LLMConfig

	mu    sync.Mutex
	model llms.Model
}

// NewOpenAI creates the provider without touching the network.
func NewOpenAI(cfg *config.LLMConfig) *OpenAIProvider {
	return &OpenAIProvider{cfg: cfg}
}

// Name identifies the provider in engine errors and logs.
func (p *OpenAIProvider) Name() string { return "OpenAI" }

// IsConfigured reports whether the OpenAI API key is present.
func (p *OpenAIProvider) IsConfigured() bool { return p.cfg.OpenAIAPIKey != "" }

func (p *OpenAIProvider) ensure() (llms.Model, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.model != nil {
		return p.model, nil
	}
	if !p.IsConfigured() {
		return nil, fmt.Errorf("openai: OPENAI_API_KEY is not set")
	}
	model, err := openai.New(
		openai.WithToken(p.cfg.OpenAIAPIKey),
		openai.WithModel(p.cfg.FallbackModel),
	)
	if err != nil {
		return nil, fmt.Errorf("openai init failed: %w", err)
	}
	p.model = model
	return p.model, nil
}

// InvokeVision sends the prompt plus image to OpenAI.
func (p *OpenAIProvider) InvokeVision(ctx context.Context, prompt string, image []byte) (map[string]any, error) {
	model, err := p.ensure()
	if err != nil {
		return nil, err
	}
	return generate(ctx, model, visionMessage(prompt, image), p.cfg, p.cfg.VisionTimeout, p.Name(), p.cfg.FallbackModel)
}

// InvokeText sends a chat-style message list to OpenAI.
func (p *OpenAIProvider) InvokeText(ctx context.Context, messages []Message) (map[string]any, error) {
	model, err := p.ensure()
	if err != nil {
		return nil, err
	}
	return generate(ctx, model, textMessages(messages), p.cfg, p.cfg.TextTimeout, p.Name(), p.cfg.FallbackModel)
}
