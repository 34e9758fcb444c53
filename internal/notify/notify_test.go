package notify

import (
	"testing"

	"github.com/seojunpark/homeroom/internal/model"
)

func TestNormalizeWhatsAppAddress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"whatsapp:+8210123456", "whatsapp:+8210123456"},
		{"+8210123456", "whatsapp:+8210123456"},
		{"8210123456", "whatsapp:+8210123456"},
		{" +8210123456 ", "whatsapp:+8210123456"},
	}
	for _, c := range cases {
		if got := normalizeWhatsAppAddress(c.in); got != c.want {
			t.Errorf("normalizeWhatsAppAddress(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSchedule(t *testing.T) {
	t.Parallel()

	full := model.Schedule{Title: "팀 미팅", Date: "2026-09-01", Time: "14:00", Location: "강남역 2번 출구"}
	if got := formatSchedule(full); got != "Schedule saved: 팀 미팅 | 2026-09-01 14:00 @ 강남역 2번 출구" {
		t.Fatalf("unexpected message: %q", got)
	}

	bare := model.Schedule{Title: "water the plants"}
	if got := formatSchedule(bare); got != "Schedule saved: water the plants" {
		t.Fatalf("unexpected message: %q", got)
	}

	timeOnly := model.Schedule{Title: "gym", Time: "07:00"}
	if got := formatSchedule(timeOnly); got != "Schedule saved: gym | 07:00" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestNoopNeverFails(t *testing.T) {
	t.Parallel()

	if err := NewNoop().ScheduleKept(model.Schedule{Title: "anything"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
