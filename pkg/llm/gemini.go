package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/stridesec/threatmodel/pkg/config"
)

// GeminiProvider is the primary vision-capable provider, backed by Google
// Gemini through langchaingo. The client is constructed on first use.
type GeminiProvider struct {
	cfg *config.LLMConfig

	mu    sync.Mutex
	model llms.Model
}

// NewGemini creates the provider without touching the network.
func NewGemini(cfg *config.LLMConfig) *GeminiProvider {
	return &GeminiProvider{cfg: cfg}
}

// Name identifies the provider in engine errors and logs.
func (p *GeminiProvider) Name() string { return "Gemini" }

// IsConfigured reports whether the Google API key is present.
func (p *GeminiProvider) IsConfigured() bool { return p.cfg.GoogleAPIKey != "" }

func (p *GeminiProvider) ensure(ctx context.Context) (llms.Model, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.model != nil {
		return p.model, nil
	}
	if !p.IsConfigured() {
		return nil, fmt.Errorf("gemini: GOOGLE_API_KEY is not set")
	}
	model, err := googleai.New(ctx,
		googleai.WithAPIKey(p.cfg.GoogleAPIKey),
		googleai.WithDefaultModel(p.cfg.PrimaryModel),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini init failed: %w", err)
	}
	p.model = model
	return p.model, nil
}

// InvokeVision sends the prompt plus image to Gemini.
func (p *GeminiProvider) InvokeVision(ctx context.Context, prompt string, image []byte) (map[string]any, error) {
	model, err := p.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return generate(ctx, model, visionMessage(prompt, image), p.cfg, p.cfg.VisionTimeout, p.Name(), p.cfg.PrimaryModel)
}

// InvokeText sends a chat-style message list to Gemini.
func (p *GeminiProvider) InvokeText(ctx context.Context, messages []Message) (map[string]any, error) {
	model, err := p.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return generate(ctx, model, textMessages(messages), p.cfg, p.cfg.TextTimeout, p.Name(), p.cfg.PrimaryModel)
}
