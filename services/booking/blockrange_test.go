package booking

import (
	"context"
	"testing"

	"barberbook/models"
)

func TestBlockDateRangeExpandsPerDay(t *testing.T) {
	engine, _, blocks, _ := newTestEngine()

	created, err := engine.BlockDateRange(context.Background(), models.BlockedSlotRangeCreate{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
		StartTime: "14:00",
		EndTime:   "15:00",
		Reason:    "maintenance",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 blocked slots, got %d", len(created))
	}
	wantDates := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	for i, b := range created {
		if b.Date != wantDates[i] {
			t.Errorf("block %d date %s, want %s", i, b.Date, wantDates[i])
		}
		if b.StartTime != "14:00" || b.EndTime != "15:00" {
			t.Errorf("block %d window %s-%s, want 14:00-15:00", i, b.StartTime, b.EndTime)
		}
		if b.ID == "" {
			t.Errorf("block %d missing id", i)
		}
	}
	if got, _ := blocks.List(context.Background()); len(got) != 3 {
		t.Errorf("store holds %d blocks, want 3", len(got))
	}
}

func TestBlockDateRangeSingleDay(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	created, err := engine.BlockDateRange(context.Background(), models.BlockedSlotRangeCreate{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-01",
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 blocked slot, got %d", len(created))
	}
}

func TestBlockDateRangeValidation(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	cases := []models.BlockedSlotRangeCreate{
		{StartDate: "2024-06-03", EndDate: "2024-06-01", StartTime: "14:00", EndTime: "15:00"}, // reversed dates
		{StartDate: "bad", EndDate: "2024-06-01", StartTime: "14:00", EndTime: "15:00"},
		{StartDate: "2024-06-01", EndDate: "2024-06-01", StartTime: "15:00", EndTime: "14:00"}, // reversed times
		{StartDate: "2024-06-01", EndDate: "2024-06-01", StartTime: "14:00", EndTime: "14:00"}, // empty window
		{StartDate: "2024-06-01", EndDate: "2024-06-01", StartTime: "2pm", EndTime: "15:00"},
	}
	for i, in := range cases {
		if _, err := engine.BlockDateRange(context.Background(), in); !IsValidation(err) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestUnblock(t *testing.T) {
	engine, _, blocks, _ := newTestEngine()
	blocks.blocks = append(blocks.blocks, models.BlockedSlot{ID: "b1", Date: "2024-06-01"})

	if err := engine.Unblock(context.Background(), "b1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := engine.Unblock(context.Background(), "b1"); !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
