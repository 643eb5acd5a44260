package types

import (
	"errors"
	"testing"
	"time"
)

func strptr(s string) *string {
	return &s
}

func TestIntentTimeNaiveISO(t *testing.T) {
	i := Intent{When: strptr("2025-06-10T15:00:00")}

	got, err := i.Time()
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestIntentTimeWithOffset(t *testing.T) {
	i := Intent{When: strptr("2025-06-10T15:00:00-03:00")}

	got, err := i.Time()
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2025, 6, 10, 15, 0, 0, 0, time.FixedZone("", -3*60*60))
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestIntentTimeAbsent(t *testing.T) {
	for _, i := range []Intent{{}, {When: strptr("")}} {
		_, err := i.Time()
		if !errors.Is(err, ErrNoTimestamp) {
			t.Errorf("Expected ErrNoTimestamp, got %v", err)
		}
	}
}

func TestIntentTimeUnparseable(t *testing.T) {
	i := Intent{When: strptr("mañana a la tarde")}

	_, err := i.Time()
	if err == nil {
		t.Fatal("Expected an error")
	}
	if errors.Is(err, ErrNoTimestamp) {
		t.Error("A present-but-garbage timestamp is not the same as an absent one")
	}
}
