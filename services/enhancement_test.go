package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// fakeModel plays the chat model, capturing what the service sends it.
type fakeModel struct {
	content  string
	err      error
	noChoice bool

	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, opt := range options {
		opt(&m.opts)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.noChoice {
		return &llms.ContentResponse{}, nil
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.content}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return m.content, m.err
}

func newFakeService(model *fakeModel) *EnhancementService {
	return NewEnhancementService(&OpenAIClient{Chat: model})
}

func TestEnhanceDescription(t *testing.T) {
	model := &fakeModel{content: "Buy milk from the store"}
	service := newFakeService(model)

	got, err := service.EnhanceDescription(context.Background(), "get milk")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk from the store", got)

	require.Len(t, model.messages, 2)
	assert.Equal(t, schema.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[1].Role)
	assert.Contains(t, textOf(t, model.messages[1]), "get milk")
	assert.Equal(t, 100, model.opts.MaxTokens)
}

func TestSuggestCategoryTrimsWhitespace(t *testing.T) {
	model := &fakeModel{content: "  Errands \n"}
	service := newFakeService(model)

	got, err := service.SuggestCategory(context.Background(), "get milk")
	require.NoError(t, err)
	assert.Equal(t, "Errands", got)
	assert.Equal(t, 50, model.opts.MaxTokens)
}

func TestEstimateDuration(t *testing.T) {
	model := &fakeModel{content: "About 2 hours"}
	service := newFakeService(model)

	got, err := service.EstimateDuration(context.Background(), "paint the fence")
	require.NoError(t, err)
	assert.Equal(t, "About 2 hours", got)
}

func TestCompletionErrors(t *testing.T) {
	t.Run("model error propagates", func(t *testing.T) {
		modelErr := errors.New("quota exceeded")
		service := newFakeService(&fakeModel{err: modelErr})

		_, err := service.EnhanceDescription(context.Background(), "x")
		assert.ErrorIs(t, err, modelErr)
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		service := newFakeService(&fakeModel{noChoice: true})

		_, err := service.SuggestCategory(context.Background(), "x")
		assert.Error(t, err)
	})
}

func textOf(t *testing.T, msg llms.MessageContent) string {
	t.Helper()
	require.NotEmpty(t, msg.Parts)
	text, ok := msg.Parts[0].(llms.TextContent)
	require.True(t, ok, "expected a text part")
	return text.Text
}
