package extract

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/matzehuels/orgchart/pkg/cache"
)

// Model asks a language model for the companies in a document. Both methods
// return the raw reply; [ParseCompanies] cleans it.
type Model interface {
	Name() string
	ParseText(ctx context.Context, text string) (string, error)
	ParseImage(ctx context.Context, dataURL string) (string, error)
}

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o"

const systemPrompt = "You extract company ownership structures from organizational charts. " +
	"Reply with valid JSON only and make every parent name match the name of another company."

const instructions = `Extract every company in this organizational chart.
Reply with ONLY a JSON array of objects with exactly these fields:
- id: integer, unique, starting at 1
- name: company name, concise, at most 25 characters
- parent: name of the owning company, "" for the top company
- equity: ownership percentage as text with a % sign

Example:
[
  {"id": 1, "name": "Holding Company", "parent": "", "equity": "100%"},
  {"id": 2, "name": "Subsidiary A", "parent": "Holding Company", "equity": "75%"},
  {"id": 3, "name": "Sub-subsidiary", "parent": "Subsidiary A", "equity": "50%"}
]`

// OpenAIConfig configures [NewOpenAIModel].
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAIModel implements [Model] with the chat completions API.
type OpenAIModel struct {
	client openai.Client
	model  string
}

// NewOpenAIModel creates a model client. The SDK's own retries are disabled;
// [Service] retries transient failures itself.
func NewOpenAIModel(cfg OpenAIConfig) *OpenAIModel {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIModel{client: openai.NewClient(opts...), model: model}
}

// Name returns the chat model name.
func (m *OpenAIModel) Name() string { return m.model }

// ParseText sends extracted document text.
func (m *OpenAIModel) ParseText(ctx context.Context, text string) (string, error) {
	return m.complete(ctx, openai.UserMessage(instructions+"\n\nText to analyze:\n"+text))
}

// ParseImage sends an image as a data URL.
func (m *OpenAIModel) ParseImage(ctx context.Context, dataURL string) (string, error) {
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(instructions),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
	}
	return m.complete(ctx, openai.UserMessage(parts))
}

func (m *OpenAIModel) complete(ctx context.Context, user openai.ChatCompletionMessageParamUnion) (string, error) {
	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(m.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			user,
		},
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(2000),
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// classify marks rate limits, server errors and network failures retryable.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 || apiErr.StatusCode >= 500 {
			return cache.Retryable(fmt.Errorf("%w: %v", cache.ErrNetwork, err))
		}
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return cache.Retryable(fmt.Errorf("%w: %v", cache.ErrNetwork, err))
	}
	return err
}

var _ Model = (*OpenAIModel)(nil)
