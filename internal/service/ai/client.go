package ai

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/tuberank/youtube-seo-assistant-go/internal/models"
	"github.com/tuberank/youtube-seo-assistant-go/pkg/logger"
)

// Result is the outcome of a generation call. Callers branch on Unavailable
// instead of handling errors: missing keys and upstream failures degrade the
// feature rather than failing the request.
type Result struct {
	Text        string
	Unavailable bool
	Reason      string
}

// Display renders the result for end users, flagging unavailability inline.
func (r Result) Display() string {
	if r.Unavailable {
		return "⚠️ " + r.Reason
	}
	return r.Text
}

// Metadata is the structured shape we ask the model to emit for a draft.
type Metadata struct {
	Titles      []string `json:"titles"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Hashtags    []string `json:"hashtags"`
}

// Client wraps the Gemini API for text generation.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini client. An empty API key returns a
// ConfigurationError so the caller can run with generation disabled.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, &models.ConfigurationError{Message: "AI is not configured. Set GOOGLE_API_KEY in your .env file."}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, &models.ConfigurationError{Message: "AI client setup failed: " + err.Error()}
	}

	return &Client{client: client, model: model}, nil
}

// Generate runs a single prompt and never returns an error: failures come
// back as an unavailable Result with a human-readable reason.
func (c *Client) Generate(ctx context.Context, prompt string) Result {
	if c == nil || c.client == nil {
		return Result{Unavailable: true, Reason: "AI is not configured. Set GOOGLE_API_KEY in your .env file."}
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		logger.Log.Warn("Gemini request failed", zap.Error(err))
		return Result{Unavailable: true, Reason: "AI error: " + err.Error()}
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return Result{Unavailable: true, Reason: "AI error: empty response"}
	}
	return Result{Text: text}
}

// GenerateMetadata asks the model for a JSON metadata draft. When the
// response does not parse, the raw Result is still returned so the UI can
// show the text as-is.
func (c *Client) GenerateMetadata(ctx context.Context, prompt string) (*Metadata, Result) {
	res := c.Generate(ctx, prompt)
	if res.Unavailable {
		return nil, res
	}

	meta, err := parseMetadata(res.Text)
	if err != nil {
		logger.Log.Warn("Gemini metadata response did not parse", zap.Error(err))
		return nil, res
	}
	return meta, res
}

// parseMetadata strips Markdown code fences and extracts the first JSON
// object from the response.
func parseMetadata(text string) (*Metadata, error) {
	cleaned := stripCodeFences(text)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &models.ParseError{Message: "no JSON object in AI response"}
	}

	var meta Metadata
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &meta); err != nil {
		return nil, &models.ParseError{Message: "failed to unmarshal AI metadata", Cause: err}
	}
	return &meta, nil
}

func stripCodeFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	// Drop an optional language hint on the fence line.
	if idx := strings.Index(t, "\n"); idx != -1 && !strings.ContainsAny(t[:idx], "{}") {
		t = t[idx+1:]
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
