package room

import (
	"context"
	"fmt"
	"io"

	"github.com/seojunpark/homeroom/internal/model"
)

// profileCards is the fixture the cards lesson renders.
var profileCards = []model.Profile{
	{ID: "t-01", Name: "이서준", Role: "담임 선생님"},
	{ID: "s-01", Name: "김민지", Role: "반장"},
	{ID: "s-02", Name: "박지호", Role: "부반장"},
	{ID: "s-03", Name: "최유나", Role: "서기"},
}

// Profiles renders the class profile cards. It is a render-only room.
type Profiles struct {
	cards []model.Profile
}

// NewProfiles creates the profile-cards room from the fixture list.
func NewProfiles() *Profiles {
	return &Profiles{cards: profileCards}
}

func (p *Profiles) Key() string   { return "profiles" }
func (p *Profiles) Title() string { return "Profiles" }

func (p *Profiles) Render(w io.Writer) {
	fmt.Fprintln(w, "Class profiles:")
	for _, card := range p.cards {
		fmt.Fprintf(w, "  [%s] %s (%s)\n", card.ID, card.Name, card.Role)
	}
}

func (p *Profiles) Handle(ctx context.Context, input string) (Outcome, error) {
	return Stay, fmt.Errorf("this room only renders, 'back' leaves it")
}
