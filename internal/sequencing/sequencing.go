// Package sequencing solves the job sequencing with deadlines problem.
//
// Every job takes one unit of time and at most one job runs per unit.
// Schedule picks the subset and order that maximizes total profit while
// every picked job finishes at or before its deadline.
package sequencing

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/me/jobseq/pkg/model"
)

// Schedule selects the jobs to run and orders them by ascending deadline.
//
// Jobs are walked from the latest deadline down. Each gap between consecutive
// distinct deadlines opens that many slots, which are filled with the most
// profitable jobs seen so far; jobs with a later deadline can always take an
// earlier slot. Jobs with negative profit are never selected.
//
// The input slice is not modified. Empty input yields an empty schedule.
func Schedule(jobs []model.Job) (*model.Schedule, error) {
	if err := Validate(jobs); err != nil {
		return nil, err
	}

	sched := &model.Schedule{
		Sequence: []string{},
		Slots:    []model.Assignment{},
		Dropped:  []string{},
	}
	if len(jobs) == 0 {
		return sched, nil
	}

	sorted := make([]candidate, len(jobs))
	for i, j := range jobs {
		sorted[i] = candidate{job: j, order: i}
	}
	slices.SortStableFunc(sorted, byDeadline)
	sched.MaxDeadline = sorted[len(sorted)-1].job.Deadline

	pq := &profitQueue{}
	picked := make([]candidate, 0, min(len(jobs), sched.MaxDeadline))

	for i := len(sorted) - 1; i >= 0; i-- {
		free := sorted[i].job.Deadline
		if i > 0 {
			// Zero when the previous job shares this deadline.
			free -= sorted[i-1].job.Deadline
		}

		if sorted[i].job.Profit >= 0 {
			pushCandidate(pq, sorted[i])
		}

		for ; free > 0 && pq.Len() > 0; free-- {
			picked = append(picked, popCandidate(pq))
		}
	}

	slices.SortStableFunc(picked, byDeadline)

	selected := make([]bool, len(jobs))
	for i, c := range picked {
		selected[c.order] = true
		sched.Sequence = append(sched.Sequence, c.job.ID)
		sched.Slots = append(sched.Slots, model.Assignment{Slot: i + 1, Job: c.job})
		sched.TotalProfit += c.job.Profit
	}
	for i, j := range jobs {
		if !selected[i] {
			sched.Dropped = append(sched.Dropped, j.ID)
		}
	}

	return sched, nil
}

// Sequence is Schedule reduced to the selected job IDs.
func Sequence(jobs []model.Job) ([]string, error) {
	sched, err := Schedule(jobs)
	if err != nil {
		return nil, err
	}
	return sched.Sequence, nil
}

// Feasible reports whether sched places each job in its own slot at or
// before its deadline, with slots numbered 1..n in sequence order.
func Feasible(sched *model.Schedule) error {
	if len(sched.Slots) != len(sched.Sequence) {
		return fmt.Errorf("%d slots for %d sequenced jobs", len(sched.Slots), len(sched.Sequence))
	}
	if sched.MaxDeadline > 0 && len(sched.Slots) > sched.MaxDeadline {
		return fmt.Errorf("%d jobs exceed %d available slots", len(sched.Slots), sched.MaxDeadline)
	}

	total := 0
	for i, a := range sched.Slots {
		if a.Slot != i+1 {
			return fmt.Errorf("job %q in slot %d, want slot %d", a.Job.ID, a.Slot, i+1)
		}
		if a.Job.ID != sched.Sequence[i] {
			return fmt.Errorf("slot %d holds %q but sequence has %q", a.Slot, a.Job.ID, sched.Sequence[i])
		}
		if a.Slot > a.Job.Deadline {
			return fmt.Errorf("job %q in slot %d misses deadline %d", a.Job.ID, a.Slot, a.Job.Deadline)
		}
		total += a.Job.Profit
	}
	if total != sched.TotalProfit {
		return fmt.Errorf("total profit %d, slots sum to %d", sched.TotalProfit, total)
	}
	return nil
}

func byDeadline(a, b candidate) int {
	return cmp.Compare(a.job.Deadline, b.job.Deadline)
}
