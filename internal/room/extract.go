package room

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/seojunpark/homeroom/internal/extract"
	"github.com/seojunpark/homeroom/internal/model"
	"github.com/seojunpark/homeroom/internal/notify"
	"github.com/seojunpark/homeroom/internal/store"
)

// Extract is the schedule-extraction lesson: type a sentence and the
// extractor answers with a structured schedule. 'keep' appends the result to
// the session log and tells the notifier; 'list' shows what was kept.
type Extract struct {
	extractor extract.Extractor
	schedules *store.ScheduleLog
	notifier  notify.Notifier
	logger    *log.Logger

	last    model.Schedule
	hasLast bool
	note    string
	showLog bool
}

// NewExtract creates the extraction room.
func NewExtract(e extract.Extractor, schedules *store.ScheduleLog, n notify.Notifier, logger *log.Logger) *Extract {
	return &Extract{extractor: e, schedules: schedules, notifier: n, logger: logger}
}

func (e *Extract) Key() string   { return "extract" }
func (e *Extract) Title() string { return "Extract" }

func (e *Extract) Render(w io.Writer) {
	if e.hasLast {
		s := e.last
		fmt.Fprintf(w, "title: %s\n", s.Title)
		fmt.Fprintf(w, "date: %s  time: %s\n", fallback(s.Date, "?"), fallback(s.Time, "?"))
		fmt.Fprintf(w, "location: %s\n", fallback(s.Location, "?"))
		fmt.Fprintf(w, "confidence: %.2f\n", s.Confidence)
	} else {
		fmt.Fprintln(w, "type a sentence to extract a schedule from it")
	}
	if e.note != "" {
		fmt.Fprintln(w, e.note)
	}
	if e.showLog {
		kept := e.schedules.List()
		if len(kept) == 0 {
			fmt.Fprintln(w, "no kept schedules yet")
		}
		for i, s := range kept {
			fmt.Fprintf(w, "%d. %s (%s %s) conf %.2f\n",
				i+1, s.Title, fallback(s.Date, "?"), fallback(s.Time, "?"), s.Confidence)
		}
	}
	fmt.Fprintln(w, "commands: <free text>, keep, list")
}

func (e *Extract) Handle(ctx context.Context, input string) (Outcome, error) {
	verb, _ := splitCommand(input)
	switch verb {
	case "keep":
		if !e.hasLast {
			return Stay, fmt.Errorf("nothing to keep, extract something first")
		}
		kept := e.schedules.Append(e.last)
		if err := e.notifier.ScheduleKept(kept); err != nil {
			e.logger.Printf("notify kept schedule: %v", err)
		}
		e.hasLast = false
		e.note = "kept: " + kept.Title
		return Stay, nil
	case "list":
		e.showLog = true
		return Stay, nil
	}

	s, err := e.extractor.Extract(ctx, input)
	if err != nil {
		return Stay, err
	}
	e.last = s
	e.hasLast = true
	e.note = ""
	return Stay, nil
}
