package datekey

import (
	"testing"
	"time"
)

func TestFormatZeroPads(t *testing.T) {
	d := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.Local)
	if got := Format(d); got != "2025-03-07" {
		t.Fatalf("Format=%q, want 2025-03-07", got)
	}
}

func TestFormatIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.June, 1, 0, 0, 1, 0, time.Local)
	night := time.Date(2025, time.June, 1, 23, 59, 59, 0, time.Local)
	if Format(morning) != Format(night) {
		t.Fatalf("same day produced different keys: %q vs %q", Format(morning), Format(night))
	}
}

func TestLexicographicOrderMatchesChronological(t *testing.T) {
	// Walk a year of days across month and year boundaries.
	cur := time.Date(2024, time.December, 25, 12, 0, 0, 0, time.Local)
	prevKey := Format(cur)
	for i := 0; i < 400; i++ {
		cur = cur.AddDate(0, 0, 1)
		key := Format(cur)
		if !(prevKey < key) {
			t.Fatalf("key order broken: %q not < %q", prevKey, key)
		}
		prevKey = key
	}
}

func TestParseRoundTrip(t *testing.T) {
	got, err := Parse("2025-01-31")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Fatalf("Parse did not return midnight: %v", got)
	}
	if Format(got) != "2025-01-31" {
		t.Fatalf("round trip=%q", Format(got))
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Fatalf("expected error for invalid key")
	}
}

func TestStartOfDay(t *testing.T) {
	d := time.Date(2025, time.May, 9, 18, 45, 12, 99, time.Local)
	sod := StartOfDay(d)
	if sod.Hour() != 0 || sod.Minute() != 0 || sod.Second() != 0 || sod.Nanosecond() != 0 {
		t.Fatalf("StartOfDay=%v", sod)
	}
	if Format(sod) != Format(d) {
		t.Fatalf("StartOfDay changed the day: %q vs %q", Format(sod), Format(d))
	}
}

func TestTodayYesterdayAdjacent(t *testing.T) {
	today, err := Parse(Today())
	if err != nil {
		t.Fatalf("Parse today: %v", err)
	}
	if Format(today.AddDate(0, 0, -1)) != Yesterday() {
		t.Fatalf("Yesterday()=%q does not precede Today()=%q", Yesterday(), Today())
	}
}
