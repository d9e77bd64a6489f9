// Package suggest generates candidate question rows for the source sheet
// via an OpenAI-compatible chat API. It is a stateless authoring aid; the
// app itself never calls it.
package suggest

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Aeffchen-dev/checkin-roulette/internal/config"
	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
)

const systemPrompt = `You write check-in questions for a card deck used to open team meetings.
Questions are short (one sentence), open-ended, and addressed directly to the reader.
Answer with one question per line. No numbering, no bullets, no quotes, no commentary.`

// Generator produces question suggestions.
type Generator struct {
	client *openai.Client
	model  string
}

// New creates a Generator. The API key is required; everything else has
// defaults.
func New(cfg config.Suggest) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set CHECKIN_OPENAI_API_KEY)")
	}

	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Generator{
		client: openai.NewClientWithConfig(cc),
		model:  model,
	}, nil
}

// Suggest asks for count new questions in the given category and depth.
// existing questions are passed along so the model avoids near-duplicates.
func (g *Generator) Suggest(ctx context.Context, category string, depth deck.Depth, count int, existing []string) ([]deck.Record, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(category, depth, count, existing)},
		},
		Temperature: 0.9,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	var records []deck.Record
	for _, text := range parseLines(resp.Choices[0].Message.Content) {
		records = append(records, deck.Record{
			Category: category,
			Text:     text,
			Depth:    depth,
		})
		if len(records) == count {
			break
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("model returned no usable questions")
	}
	return records, nil
}

func buildPrompt(category string, depth deck.Depth, count int, existing []string) string {
	var b strings.Builder
	tone := "deep, reflective"
	if depth == deck.DepthLight {
		tone = "light, playful, easy to answer in ten seconds"
	}
	fmt.Fprintf(&b, "Write %d %s check-in questions for the category %q.\n", count, tone, category)

	if len(existing) > 0 {
		b.WriteString("\nThe deck already contains these; do not repeat or rephrase them:\n")
		for _, q := range existing {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	return b.String()
}

// parseLines extracts question texts from the model output, stripping the
// decoration models add despite instructions.
func parseLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		line = strings.Trim(line, `"`)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
