package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/stridesec/threatmodel/pkg/config"
)

// generate runs one langchaingo call under the given timeout and converts
// the response content into the provider result contract. On success the
// model identifier is recorded under "model" (unless the payload already
// carries one), so the pipeline can report which model produced it.
func generate(ctx context.Context, model llms.Model, messages []llms.MessageContent, cfg *config.LLMConfig, timeout time.Duration, service, modelName string) (map[string]any, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := model.GenerateContent(callCtx, messages,
		llms.WithTemperature(cfg.Temperature),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return ErrorResult(service, "Empty response", "empty"), nil
	}

	result := ParseResponse(resp.Choices[0].Content, service)
	if !IsErrorResult(result) {
		if _, ok := result["model"]; !ok {
			result["model"] = modelName
		}
	}
	return result, nil
}

// visionMessage builds the single multimodal human message used by vision
// invocations. The image MIME type is sniffed from the payload.
func visionMessage(prompt string, image []byte) []llms.MessageContent {
	return []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
				llms.BinaryPart(http.DetectContentType(image), image),
			},
		},
	}
}

// textMessages converts chat-style messages into langchaingo content.
func textMessages(messages []Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == "system" {
			role = llms.ChatMessageTypeSystem
		}
		out = append(out, llms.TextParts(role, m.Content))
	}
	return out
}
