package sequencing

import (
	"fmt"
	"testing"

	"github.com/me/jobseq/pkg/model"
)

// decodeJobs turns fuzz bytes into jobs, three bytes per job.
func decodeJobs(data []byte) []model.Job {
	var out []model.Job
	for i := 0; i+2 < len(data) && len(out) < 12; i += 3 {
		out = append(out, model.Job{
			ID:       fmt.Sprintf("j%d", len(out)),
			Deadline: int(data[i+1]%8) + 1,
			Profit:   int(int8(data[i+2])),
		})
	}
	return out
}

func FuzzSchedule(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 1, 100, 0, 0, 19, 0, 1, 27, 0, 0, 25, 0, 2, 15})
	f.Add([]byte{0, 0, 50, 0, 1, 60, 0, 1, 20, 0, 2, 30})
	f.Add([]byte{0, 0, 5, 0, 0, 9, 0, 0, 7})
	f.Add([]byte{0, 7, 0x80, 0, 3, 0x7f})

	f.Fuzz(func(t *testing.T, data []byte) {
		in := decodeJobs(data)

		got, err := Schedule(in)
		if err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		if err := Feasible(got); err != nil {
			t.Fatalf("Feasible: %v", err)
		}
		if len(got.Sequence) > len(in) {
			t.Fatalf("selected %d of %d jobs", len(got.Sequence), len(in))
		}
		if len(got.Sequence)+len(got.Dropped) != len(in) {
			t.Fatalf("selected %d + dropped %d != %d jobs", len(got.Sequence), len(got.Dropped), len(in))
		}

		best, err := MaxProfit(in)
		if err != nil {
			t.Fatalf("MaxProfit: %v", err)
		}
		if got.TotalProfit != best {
			t.Fatalf("greedy profit %d, optimum %d (jobs %v)", got.TotalProfit, best, in)
		}
	})
}
