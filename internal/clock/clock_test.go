package clock

import (
	"testing"
	"time"
)

func TestFakeAdvance(test *testing.T) {
	test.Parallel()
	start := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	fake := NewFake(start)
	if fake.Now().Location() != time.UTC {
		test.Fatalf("expected UTC location, got %v", fake.Now().Location())
	}
	fake.Advance(90 * time.Minute)
	expected := start.Add(90 * time.Minute).UTC()
	if !fake.Now().Equal(expected) {
		test.Fatalf("expected %v, got %v", expected, fake.Now())
	}
	fake.Set(start)
	if !fake.Now().Equal(start) {
		test.Fatalf("expected %v after set, got %v", start, fake.Now())
	}
}

func TestSystemIsUTC(test *testing.T) {
	test.Parallel()
	if (System{}).Now().Location() != time.UTC {
		test.Fatalf("expected UTC system clock")
	}
}
