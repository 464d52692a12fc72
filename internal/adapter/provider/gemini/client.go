// Package gemini implements the translation and illustration clients on the
// Google Gemini API (text: structured JSON output, image: Imagen).
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/heartmarshall/memelingo-backend/internal/config"
	"github.com/heartmarshall/memelingo-backend/internal/domain"
	"github.com/heartmarshall/memelingo-backend/internal/provider"
)

// Client talks to the Gemini API. It serves both the translation and the
// illustration contract.
type Client struct {
	api        *genai.Client
	textModel  string
	imageModel string
	log        *slog.Logger
}

// New creates a Client using the API key and model names from cfg.
func New(ctx context.Context, cfg config.ProviderConfig, logger *slog.Logger) (*Client, error) {
	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{
		api:        api,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		log:        logger.With("adapter", "gemini"),
	}, nil
}

// Translate sends one schema-constrained translation request. Single attempt:
// any transport error, non-JSON payload, or shape violation is returned to
// the caller as-is, there is no retry.
func (c *Client) Translate(ctx context.Context, input string) (*domain.TranslationResult, error) {
	c.log.DebugContext(ctx, "translation request", slog.String("model", c.textModel))

	resp, err := c.api.Models.GenerateContent(ctx, c.textModel,
		genai.Text(provider.TranslationPrompt(input)),
		&genai.GenerateContentConfig{
			ResponseMIMEType:  "application/json",
			ResponseSchema:    translationSchema,
			SystemInstruction: genai.NewContentFromText(provider.SystemPersona, genai.RoleUser),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("gemini: empty response: %w", domain.ErrInvalidResult)
	}

	var result domain.TranslationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	c.log.DebugContext(ctx, "translation response",
		slog.Bool("is_chinese", result.IsChineseInput),
		slog.Int("variations", len(result.Variations)),
		slog.Int("examples", len(result.Examples)),
	)

	return &result, nil
}

// Illustrate generates exactly one 4:3 JPEG for the given visual description.
// The description is wrapped in the fixed style directive before sending.
func (c *Client) Illustrate(ctx context.Context, description string) (*domain.Illustration, error) {
	c.log.DebugContext(ctx, "illustration request", slog.String("model", c.imageModel))

	resp, err := c.api.Models.GenerateImages(ctx, c.imageModel,
		provider.IllustrationPrompt(description),
		&genai.GenerateImagesConfig{
			NumberOfImages: provider.ImageCount,
			AspectRatio:    provider.ImageAspectRatio,
			OutputMIMEType: provider.ImageMIMEType,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate images: %w", err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil ||
		len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, domain.ErrNoImage
	}

	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = provider.ImageMIMEType
	}
	return &domain.Illustration{MIMEType: mime, Data: img.ImageBytes}, nil
}
