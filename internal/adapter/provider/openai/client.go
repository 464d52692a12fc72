// Package openai implements the translation and illustration clients on the
// OpenAI API (or any OpenAI-compatible gateway via base_url).
package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/heartmarshall/memelingo-backend/internal/config"
	"github.com/heartmarshall/memelingo-backend/internal/domain"
	"github.com/heartmarshall/memelingo-backend/internal/provider"
)

// Client talks to the OpenAI API for both translation and illustration.
type Client struct {
	api        openai.Client
	textModel  string
	imageModel string
	log        *slog.Logger
}

// New creates a Client from cfg. BaseURL, when set, points the client at an
// OpenAI-compatible endpoint.
func New(cfg config.ProviderConfig, logger *slog.Logger) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		api:        openai.NewClient(opts...),
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		log:        logger.With("adapter", "openai"),
	}
}

// Translate sends one schema-constrained translation request (json_schema
// response format). Single attempt, no retry.
func (c *Client) Translate(ctx context.Context, input string) (*domain.TranslationResult, error) {
	c.log.DebugContext(ctx, "translation request", slog.String("model", c.textModel))

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.textModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(provider.SystemPersona),
			openai.UserMessage(provider.TranslationPrompt(input)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "translation_result",
					Schema: translationSchema,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty choices: %w", domain.ErrInvalidResult)
	}

	var result domain.TranslationResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	c.log.DebugContext(ctx, "translation response",
		slog.Bool("is_chinese", result.IsChineseInput),
		slog.Int("variations", len(result.Variations)),
	)

	return &result, nil
}

// Illustrate generates one JPEG for the description. The API has no native
// 4:3 size; the nearest landscape size is used instead.
func (c *Client) Illustrate(ctx context.Context, description string) (*domain.Illustration, error) {
	c.log.DebugContext(ctx, "illustration request", slog.String("model", c.imageModel))

	resp, err := c.api.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:       provider.IllustrationPrompt(description),
		Model:        openai.ImageModel(c.imageModel),
		N:            openai.Int(provider.ImageCount),
		Size:         openai.ImageGenerateParamsSize1536x1024,
		OutputFormat: openai.ImageGenerateParamsOutputFormatJPEG,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: generate image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, domain.ErrNoImage
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai: decode image payload: %w", err)
	}
	return &domain.Illustration{MIMEType: provider.ImageMIMEType, Data: data}, nil
}
