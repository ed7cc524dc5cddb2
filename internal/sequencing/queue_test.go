package sequencing

import (
	"testing"

	"github.com/me/jobseq/pkg/model"
)

func TestProfitQueue_PopOrder(t *testing.T) {
	pq := &profitQueue{}

	in := []candidate{
		{job: model.Job{ID: "low", Profit: 1}, order: 0},
		{job: model.Job{ID: "high", Profit: 90}, order: 1},
		{job: model.Job{ID: "mid", Profit: 40}, order: 2},
		{job: model.Job{ID: "top", Profit: 100}, order: 3},
		{job: model.Job{ID: "mid2", Profit: 40}, order: 4},
	}
	for _, c := range in {
		pushCandidate(pq, c)
	}

	if pq.Len() != 5 {
		t.Fatalf("expected len 5, got %d", pq.Len())
	}

	// Equal profits leave in input order, so mid precedes mid2.
	want := []string{"top", "high", "mid", "mid2", "low"}
	for _, id := range want {
		got := popCandidate(pq)
		if got.job.ID != id {
			t.Errorf("popped %s, want %s", got.job.ID, id)
		}
	}
	if pq.Len() != 0 {
		t.Errorf("expected empty queue, got len %d", pq.Len())
	}
}

func TestProfitQueue_SingleElement(t *testing.T) {
	pq := &profitQueue{}
	pushCandidate(pq, candidate{job: model.Job{ID: "solo", Profit: 42}})

	got := popCandidate(pq)
	if got.job.ID != "solo" || got.job.Profit != 42 {
		t.Errorf("expected {solo, 42}, got {%s, %d}", got.job.ID, got.job.Profit)
	}
	if pq.Len() != 0 {
		t.Errorf("expected empty after pop, got len %d", pq.Len())
	}
}
