package panchang

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTableLengths(t *testing.T) {
	if len(Nakshatras) != 12 {
		t.Fatalf("nakshatra table has %d entries, want 12", len(Nakshatras))
	}
	if len(Karnas) != 10 {
		t.Fatalf("karna table has %d entries, want 10", len(Karnas))
	}
	if len(Yogas) != 10 {
		t.Fatalf("yoga table has %d entries, want 10", len(Yogas))
	}
	if len(Tithis) != 10 {
		t.Fatalf("tithi table has %d entries, want 10", len(Tithis))
	}
}

func TestComputeDeterministic(t *testing.T) {
	d := date(2025, time.June, 1)
	a := Compute(d)
	b := Compute(d)
	if a != b {
		t.Fatalf("same date gave different results: %+v vs %+v", a, b)
	}
}

func TestComputeCyclicSelection(t *testing.T) {
	// January 1st is day-of-year 1 in every year.
	p := Compute(date(2025, time.January, 1))
	if p.Nakshatra != Nakshatras[1] {
		t.Errorf("nakshatra = %q, want %q", p.Nakshatra, Nakshatras[1])
	}
	if p.Karna != Karnas[1] {
		t.Errorf("karna = %q, want %q", p.Karna, Karnas[1])
	}
	if p.Yoga != Yogas[1] {
		t.Errorf("yoga = %q, want %q", p.Yoga, Yogas[1])
	}
	if p.Tithi != Tithis[1] {
		t.Errorf("tithi = %q, want %q", p.Tithi, Tithis[1])
	}

	// Spot-check the modulo on a later date: 2025-02-14 is day 45.
	p = Compute(date(2025, time.February, 14))
	if p.Nakshatra != Nakshatras[45%12] {
		t.Errorf("nakshatra = %q, want %q", p.Nakshatra, Nakshatras[45%12])
	}
	if p.Tithi != Tithis[45%10] {
		t.Errorf("tithi = %q, want %q", p.Tithi, Tithis[45%10])
	}
}

func TestComputeIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.March, 10, 6, 15, 0, 0, time.UTC)
	night := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)
	if Compute(morning) != Compute(night) {
		t.Fatal("time of day changed the classification")
	}
}

func TestComputeTimingStringsAreFixed(t *testing.T) {
	for _, d := range []time.Time{
		date(2024, time.February, 29),
		date(2025, time.January, 1),
		date(2025, time.December, 31),
	} {
		p := Compute(d)
		if p.Sunrise != "06:15 AM" || p.Sunset != "06:45 PM" ||
			p.Moonrise != "08:30 PM" || p.Moonset != "07:20 AM" {
			t.Fatalf("timing strings changed for %s: %+v", d.Format("2006-01-02"), p)
		}
	}
}
