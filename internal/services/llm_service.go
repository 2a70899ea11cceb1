package services

import (
	"context"
	"fmt"
	"time"

	"github.com/openhire/job-board-api/internal/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// llmTimeout bounds every upstream call so a hung provider cannot hold a
// connection indefinitely.
const llmTimeout = 60 * time.Second

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the provider selected by LLM_PROVIDER.
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	var client llms.Model
	var err error

	switch cfg.LLMProvider {
	case "googleai":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is empty")
		}
		client, err = googleai.New(context.Background(),
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel("gemini-2.5-flash"),
		)
	case "openai", "":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is empty")
		}
		client, err = openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel("gpt-4o-mini"),
		)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", cfg.LLMProvider, err)
	}

	return &LLMService{
		Client: client,
	}, nil
}

// Generate blocks until the full completion returns. The context is the
// request context, so a client disconnect cancels the upstream call.
func (s *LLMService) Generate(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()
	return llms.GenerateFromSinglePrompt(ctx, s.Client, prompt, opts...)
}

// GenerateStream forwards completion chunks to emit as they are produced.
// Returning an error from emit aborts the upstream call.
func (s *LLMService) GenerateStream(ctx context.Context, prompt string, emit func(chunk []byte) error, opts ...llms.CallOption) error {
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	opts = append(opts, llms.WithStreamingFunc(func(_ context.Context, chunk []byte) error {
		return emit(chunk)
	}))
	_, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt, opts...)
	return err
}
