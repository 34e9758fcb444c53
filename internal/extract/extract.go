// Package extract turns free-form text into structured schedule entries.
// The default responder is a canned mock; a real language-model client can
// be selected by configuration.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seojunpark/homeroom/internal/model"
)

// ErrEmptyInput is returned when there is no text to extract from.
var ErrEmptyInput = errors.New("extract: input text is empty")

// Extractor resolves schedule details from a short note.
type Extractor interface {
	Extract(ctx context.Context, text string) (model.Schedule, error)
}

// promptTemplate is the instruction sent to the language model. The three
// placeholders are substituted by plain text replacement in BuildPrompt.
const promptTemplate = `You extract schedule details from a short note.
Today is {{today}} in the {{timezone}} timezone. Resolve relative dates
like "tomorrow" or "next Friday" against that date.

Note: {{input}}

Reply with a single JSON object and nothing else:
{"title": "...", "date": "YYYY-MM-DD", "time": "HH:MM", "location": "...", "confidence": 0.0}
Use an empty string for any field the note does not state, and set
confidence between 0 and 1.`

// BuildPrompt fills the prompt template with the note text, today's date and
// the configured timezone. The note text is substituted last, so
// placeholder-like tokens inside it pass through untouched.
func BuildPrompt(input string, today time.Time, loc *time.Location) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{today}}", today.In(loc).Format("2006-01-02"))
	prompt = strings.ReplaceAll(prompt, "{{timezone}}", loc.String())
	return strings.ReplaceAll(prompt, "{{input}}", strings.TrimSpace(input))
}

// extraction is the JSON shape the model is asked to reply with.
type extraction struct {
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Location   string  `json:"location"`
	Confidence float64 `json:"confidence"`
}

// parseResponse decodes a model reply. Models wrap JSON in a fenced code
// block often enough that the fence is stripped before decoding.
func parseResponse(raw string) (extraction, error) {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		if i := strings.LastIndex(body, "```"); i >= 0 {
			body = body[:i]
		}
		body = strings.TrimSpace(body)
	}

	var out extraction
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return extraction{}, fmt.Errorf("decode extraction response: %w", err)
	}
	return out, nil
}

// schedule maps a decoded reply onto the model type, keeping the raw note.
func (e extraction) schedule(raw string) model.Schedule {
	return model.Schedule{
		Title:      strings.TrimSpace(e.Title),
		Date:       strings.TrimSpace(e.Date),
		Time:       strings.TrimSpace(e.Time),
		Location:   strings.TrimSpace(e.Location),
		RawInput:   raw,
		Confidence: e.Confidence,
	}
}
