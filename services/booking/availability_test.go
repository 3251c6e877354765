package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"barberbook/models"
	"barberbook/scheduling"
)

const (
	monday = "2024-06-03"
	sunday = "2024-06-02"
)

func formatSlots(minutes []int) []string {
	out := make([]string, 0, len(minutes))
	for _, m := range minutes {
		out = append(out, scheduling.FormatClock(m))
	}
	return out
}

func TestAvailableSlotsClosedDay(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	slots, err := engine.AvailableSlots(context.Background(), sunday, haircutID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on closed weekday, got %v", formatSlots(slots))
	}
}

func TestAvailableSlotsEmptyDay(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	// 30-minute service: full lattice 09:00..20:30.
	slots, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d: %v", len(slots), formatSlots(slots))
	}
	if got := scheduling.FormatClock(slots[0]); got != "09:00" {
		t.Errorf("first slot %s, want 09:00", got)
	}
	if got := scheduling.FormatClock(slots[len(slots)-1]); got != "20:30" {
		t.Errorf("last slot %s, want 20:30", got)
	}

	// 45-minute service: 20:30 does not fit before 21:00 close.
	slots, err = engine.AvailableSlots(context.Background(), monday, comboID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := scheduling.FormatClock(slots[len(slots)-1]); got != "20:00" {
		t.Errorf("last 45-minute slot %s, want 20:00", got)
	}
}

func TestAvailableSlotsUnknownService(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	_, err := engine.AvailableSlots(context.Background(), monday, "nope")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestAvailableSlotsCatalogFailureIsNotNotFound(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	engine.Catalog = &fakeCatalog{err: errors.New("mongo: connection timed out")}

	_, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err == nil {
		t.Fatal("expected an error from a failing catalog")
	}
	if IsNotFound(err) {
		t.Fatalf("store failure must not surface as not-found: %v", err)
	}
}

func TestAvailableSlotsInvalidDate(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	_, err := engine.AvailableSlots(context.Background(), "03-06-2024", haircutID)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAvailableSlotsExcludesBookedOverlaps(t *testing.T) {
	engine, appts, _, _ := newTestEngine()

	// 30-minute booking at 10:00 occupies [10:00, 10:30).
	appts.appts = append(appts.appts, models.Appointment{
		ID: "a1", Date: monday, Time: "10:00", DurationMinutes: 30, Status: models.StatusScheduled,
	})

	slots, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := formatSlots(slots)
	for _, s := range got {
		if s == "10:00" {
			t.Error("10:00 should be excluded")
		}
	}
	// Adjacent slots stay available: [09:30,10:00) and [10:30,11:00) touch but
	// do not overlap the booking.
	if !contains(got, "09:30") {
		t.Error("09:30 should remain available")
	}
	if !contains(got, "10:30") {
		t.Error("10:30 should remain available")
	}
}

func TestAvailableSlotsLongerServiceStraddlesBooking(t *testing.T) {
	engine, appts, _, _ := newTestEngine()

	appts.appts = append(appts.appts, models.Appointment{
		ID: "a1", Date: monday, Time: "10:00", DurationMinutes: 30, Status: models.StatusScheduled,
	})

	// A 45-minute candidate at 09:30 occupies [09:30, 10:15) and collides.
	slots, err := engine.AvailableSlots(context.Background(), monday, comboID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := formatSlots(slots)
	if contains(got, "09:30") {
		t.Error("09:30 should be excluded for a 45-minute service")
	}
	if contains(got, "10:00") {
		t.Error("10:00 should be excluded")
	}
	if !contains(got, "09:00") {
		t.Error("09:00 should remain available ([09:00,09:45) ends before 10:00)")
	}
	if !contains(got, "10:30") {
		t.Error("10:30 should remain available")
	}
}

func TestAvailableSlotsCancelledFreesSlot(t *testing.T) {
	engine, appts, _, _ := newTestEngine()

	appts.appts = append(appts.appts, models.Appointment{
		ID: "a1", Date: monday, Time: "10:00", DurationMinutes: 30, Status: models.StatusCancelled,
	})

	slots, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(formatSlots(slots), "10:00") {
		t.Error("cancelled appointment should not occupy its slot")
	}
}

func TestAvailableSlotsExcludesBlockedWindow(t *testing.T) {
	engine, _, blocks, _ := newTestEngine()

	blocks.blocks = append(blocks.blocks, models.BlockedSlot{
		ID: "b1", Date: monday, StartTime: "14:00", EndTime: "15:00",
	})

	slots, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := formatSlots(slots)
	for _, s := range []string{"14:00", "14:30"} {
		if contains(got, s) {
			t.Errorf("%s falls inside the blocked window and should be excluded", s)
		}
	}
	if !contains(got, "13:30") {
		t.Error("13:30 should remain available ([13:30,14:00) touches the block)")
	}
	if !contains(got, "15:00") {
		t.Error("15:00 should remain available")
	}
}

func TestAvailableSlotsSkipsMalformedRecords(t *testing.T) {
	engine, appts, _, _ := newTestEngine()

	appts.appts = append(appts.appts,
		models.Appointment{ID: "bad", Date: monday, Time: "not-a-time", DurationMinutes: 30, Status: models.StatusScheduled},
		models.Appointment{ID: "ok", Date: monday, Time: "10:00", DurationMinutes: 30, Status: models.StatusScheduled},
	)

	slots, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err != nil {
		t.Fatalf("one malformed record must not fail the computation: %v", err)
	}
	got := formatSlots(slots)
	if contains(got, "10:00") {
		t.Error("the well-formed booking should still be excluded")
	}
	if len(got) != 23 {
		t.Errorf("expected 23 slots (24 minus the 10:00 booking), got %d", len(got))
	}
}

func TestAvailableSlotsParses12HourStoredTimes(t *testing.T) {
	engine, appts, _, _ := newTestEngine()

	appts.appts = append(appts.appts, models.Appointment{
		ID: "a1", Date: monday, Time: "10:00 AM", DurationMinutes: 30, Status: models.StatusScheduled,
	})

	slots, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contains(formatSlots(slots), "10:00") {
		t.Error("display-formatted stored time should still exclude its slot")
	}
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	engine, appts, _, _ := newTestEngine()
	appts.appts = append(appts.appts, models.Appointment{
		ID: "a1", Date: monday, Time: "11:30", DurationMinutes: 30, Status: models.StatusScheduled,
	})

	first, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.AvailableSlots(context.Background(), monday, haircutID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolve is not idempotent: %v vs %v", first, second)
	}
}

func contains(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
