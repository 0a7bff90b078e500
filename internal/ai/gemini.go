package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const transcribePrompt = `You are a document transcriber. Return ONLY the plain text of this PDF - no markdown, no code fences, no commentary.

RULES:
- One visual line of the document per output line, in reading order
- Keep section headings (e.g. "Skills", "Experience") on their own line
- Keep list separators exactly as printed (commas, bullets, pipes)
- Do not summarize, reorder, translate or correct anything
`

// Gemini transcribes PDFs with a Gemini multimodal model.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model}, nil
}

// Model returns the model name requests are sent to.
func (g *Gemini) Model() string { return g.model }

func (g *Gemini) Transcribe(ctx context.Context, pdf []byte) (string, error) {
	if g.client == nil {
		return "", errors.New("gemini not configured")
	}
	if len(pdf) == 0 {
		return "", nil
	}
	content := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: transcribePrompt},
				{InlineData: &genai.Blob{MIMEType: "application/pdf", Data: pdf}},
			},
		},
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, content, nil)
	if err != nil {
		return "", fmt.Errorf("gemini transcription failed: %w", err)
	}
	return stripCodeFences(res.Text()), nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	// Opening fence, possibly with a language tag.
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i != -1 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}

	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}

	return s
}
