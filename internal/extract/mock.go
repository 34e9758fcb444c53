package extract

import (
	"context"
	"strings"

	"github.com/seojunpark/homeroom/internal/model"
)

// fallbackConfidence is reported when no canned response matches the note.
const fallbackConfidence = 0.30

// canned pairs trigger keywords with the schedule fragment they resolve to.
type canned struct {
	keywords []string
	schedule model.Schedule
}

var cannedResponses = []canned{
	{
		keywords: []string{"meeting", "강남", "gangnam"},
		schedule: model.Schedule{
			Title:      "팀 미팅",
			Date:       "2026-09-01",
			Time:       "14:00",
			Location:   "강남역 2번 출구",
			Confidence: 0.92,
		},
	},
	{
		keywords: []string{"dinner", "저녁"},
		schedule: model.Schedule{
			Title:      "저녁 약속",
			Date:       "2026-09-02",
			Time:       "19:30",
			Location:   "서래마을",
			Confidence: 0.88,
		},
	},
	{
		keywords: []string{"gym", "운동"},
		schedule: model.Schedule{
			Title:      "아침 운동",
			Date:       "2026-09-03",
			Time:       "07:00",
			Location:   "동네 헬스장",
			Confidence: 0.85,
		},
	},
}

// Mock is the default extractor. It matches the note against a fixed set of
// keywords and replies with the canned fragment for the first hit; anything
// else comes back as a bare title with low confidence and no resolved fields.
type Mock struct{}

// NewMock creates the canned extractor.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Extract(ctx context.Context, text string) (model.Schedule, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return model.Schedule{}, ErrEmptyInput
	}

	lowered := strings.ToLower(input)
	for _, c := range cannedResponses {
		for _, keyword := range c.keywords {
			if strings.Contains(lowered, keyword) {
				s := c.schedule
				s.RawInput = input
				return s, nil
			}
		}
	}

	return model.Schedule{
		Title:      truncate(input, 80),
		RawInput:   input,
		Confidence: fallbackConfidence,
	}, nil
}

// truncate shortens s to max runes. Rune-based so multi-byte titles are not
// cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
