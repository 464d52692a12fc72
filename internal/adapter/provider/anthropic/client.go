// Package anthropic implements the translation client on the Anthropic
// Messages API. Anthropic has no image generation model, so this provider
// runs without an illustrator: illustrations simply stay absent.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/memelingo-backend/internal/config"
	"github.com/heartmarshall/memelingo-backend/internal/domain"
	"github.com/heartmarshall/memelingo-backend/internal/provider"
)

const maxTokens = 2048

// Client talks to the Anthropic Messages API.
type Client struct {
	api   anthropic.Client
	model string
	log   *slog.Logger
}

// New creates a Client from cfg.
func New(cfg config.ProviderConfig, logger *slog.Logger) *Client {
	return &Client{
		api:   anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model: cfg.TextModel,
		log:   logger.With("adapter", "anthropic"),
	}
}

// Translate sends one translation request. The Messages API has no schema
// constraint mode, so the JSON object is extracted from the response text and
// validated locally. Single attempt, no retry.
func (c *Client) Translate(ctx context.Context, input string) (*domain.TranslationResult, error) {
	c.log.DebugContext(ctx, "translation request", slog.String("model", c.model))

	prompt := provider.TranslationPrompt(input) +
		"\n\nOutput ONLY a valid JSON object with keys inputAnalysis{hasIssue,original,corrected,issueType,explanation}, isChineseInput, mainTranslation, variations, culturalContext, examples[{original,translated}], imagePrompt. No markdown, no explanations."

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: provider.SystemPersona},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic: message call: %w", err)
	}
	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("anthropic: empty response: %w", domain.ErrInvalidResult)
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}
	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("anthropic: response does not contain valid JSON: %w", domain.ErrInvalidResult)
	}

	var result domain.TranslationResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("anthropic: decode response: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	c.log.DebugContext(ctx, "translation response",
		slog.Bool("is_chinese", result.IsChineseInput),
		slog.Int("variations", len(result.Variations)),
	)

	return &result, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response: %w", domain.ErrInvalidResult)
	}
	return s[start : end+1], nil
}
