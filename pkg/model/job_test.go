package model

import (
	"testing"
	"time"
)

func TestRun_Summary(t *testing.T) {
	now := time.Now().UTC()
	run := &Run{
		ID:   "run_1",
		Name: "weekly",
		Jobs: []Job{
			{ID: "a", Deadline: 1, Profit: 10},
			{ID: "b", Deadline: 1, Profit: 20},
		},
		Schedule: Schedule{
			Sequence:    []string{"b"},
			Dropped:     []string{"a"},
			TotalProfit: 20,
			MaxDeadline: 1,
		},
		CreatedAt: now,
	}

	s := run.Summary()
	if s.ID != "run_1" || s.Name != "weekly" {
		t.Errorf("summary identity = %q/%q, want run_1/weekly", s.ID, s.Name)
	}
	if s.JobCount != 2 {
		t.Errorf("JobCount = %d, want 2", s.JobCount)
	}
	if s.Selected != 1 {
		t.Errorf("Selected = %d, want 1", s.Selected)
	}
	if s.TotalProfit != 20 {
		t.Errorf("TotalProfit = %d, want 20", s.TotalProfit)
	}
	if !s.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", s.CreatedAt, now)
	}
}
