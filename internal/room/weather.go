package room

import (
	"context"
	"fmt"
	"io"

	"github.com/seojunpark/homeroom/internal/model"
	"github.com/seojunpark/homeroom/internal/weather"
)

// Weather shows current conditions for the last requested city. A failed
// lookup is part of the screen state rather than a command error: it is
// rendered as plain text and 'refresh' re-triggers the call.
type Weather struct {
	svc  *weather.Service
	city string
	last model.Weather
	err  string
}

// NewWeather creates the weather room over the given service.
func NewWeather(svc *weather.Service) *Weather {
	return &Weather{svc: svc}
}

func (r *Weather) Key() string   { return "weather" }
func (r *Weather) Title() string { return "Weather" }

func (r *Weather) Render(w io.Writer) {
	switch {
	case r.err != "":
		fmt.Fprintf(w, "weather error: %s\n", r.err)
	case r.last.City == "":
		fmt.Fprintln(w, "no city yet")
	default:
		fmt.Fprintf(w, "%s: %.1f°C, %s (%s), humidity %.0f%%\n",
			r.last.City, r.last.Temperature, r.last.Condition, r.last.Description, r.last.Humidity)
		fmt.Fprintf(w, "fetched at %s\n", r.last.FetchedAt.Format("15:04:05"))
	}
	fmt.Fprintln(w, "commands: city <name>, refresh")
}

func (r *Weather) Handle(ctx context.Context, input string) (Outcome, error) {
	verb, rest := splitCommand(input)
	switch verb {
	case "city":
		if rest == "" {
			return Stay, fmt.Errorf("city needs a name, e.g. 'city seoul'")
		}
		r.city = rest
		r.lookup(ctx)
		return Stay, nil
	case "refresh":
		if r.city == "" {
			return Stay, fmt.Errorf("pick a city first, e.g. 'city seoul'")
		}
		r.lookup(ctx)
		return Stay, nil
	}
	return Stay, fmt.Errorf("unknown command %q", input)
}

func (r *Weather) lookup(ctx context.Context) {
	current, err := r.svc.Current(ctx, r.city)
	if err != nil {
		r.err = err.Error()
		return
	}
	r.last = current
	r.err = ""
}
