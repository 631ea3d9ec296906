package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/jayagayathricodes/SmartTaskManager/config"
)

// Enhancer is the outbound text-completion contract used by task creation.
// Any error aborts the caller; there are no retries here.
type Enhancer interface {
	EnhanceDescription(ctx context.Context, description string) (string, error)
	SuggestCategory(ctx context.Context, description string) (string, error)
	EstimateDuration(ctx context.Context, description string) (string, error)
}

// EnhancementService turns raw task descriptions into clearer ones and infers
// a category, one completion call per operation.
type EnhancementService struct {
	client *OpenAIClient
}

func NewEnhancementService(client *OpenAIClient) *EnhancementService {
	return &EnhancementService{client: client}
}

// EnhanceDescription rewrites a description to be clearer and more actionable.
func (s *EnhancementService) EnhanceDescription(ctx context.Context, description string) (string, error) {
	return s.complete(ctx,
		"You are a helpful assistant that improves task descriptions to be more clear and actionable.",
		fmt.Sprintf("Enhance this task description: %s", description),
		100,
	)
}

// SuggestCategory returns a single-word category for the task.
func (s *EnhancementService) SuggestCategory(ctx context.Context, description string) (string, error) {
	category, err := s.complete(ctx,
		"You are a helpful assistant that categorizes tasks. Respond with only one word.",
		fmt.Sprintf("Suggest a category for this task: %s", description),
		50,
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(category), nil
}

// EstimateDuration estimates the hours a task needs. The create flow does not
// call this; it is exposed for clients that want an estimate on demand.
func (s *EnhancementService) EstimateDuration(ctx context.Context, description string) (string, error) {
	return s.complete(ctx,
		"You are a helpful assistant that estimates task duration. Provide estimates in hours.",
		fmt.Sprintf("Estimate time needed for this task: %s", description),
		50,
	)
}

func (s *EnhancementService) complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userPrompt)},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages,
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		config.Logger.Errorw("completion call failed",
			"error", err,
			"promptLength", len(userPrompt),
		)
		return "", fmt.Errorf("completion call failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return response.Choices[0].Content, nil
}
