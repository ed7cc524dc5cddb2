package sequencing

import (
	"errors"
	"fmt"
	"slices"

	"github.com/me/jobseq/pkg/model"
)

// MaxExhaustiveJobs bounds the input size accepted by MaxProfit.
const MaxExhaustiveJobs = 20

// ErrTooManyJobs is returned by MaxProfit for inputs over MaxExhaustiveJobs.
var ErrTooManyJobs = errors.New("too many jobs for exhaustive search")

// MaxProfit returns the best achievable total profit by checking every subset
// of jobs. It runs in O(2^n · n log n) and exists to cross-check Schedule.
func MaxProfit(jobs []model.Job) (int, error) {
	if err := Validate(jobs); err != nil {
		return 0, err
	}
	if len(jobs) > MaxExhaustiveJobs {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyJobs, len(jobs), MaxExhaustiveJobs)
	}

	best := 0
	subset := make([]int, 0, len(jobs))
	for mask := 1; mask < 1<<len(jobs); mask++ {
		subset = subset[:0]
		profit := 0
		for i := range jobs {
			if mask&(1<<i) != 0 {
				subset = append(subset, jobs[i].Deadline)
				profit += jobs[i].Profit
			}
		}
		if profit <= best {
			continue
		}
		if fitsDeadlines(subset) {
			best = profit
		}
	}
	return best, nil
}

// fitsDeadlines reports whether one job per deadline can be placed in slots
// 1..n. Sorting ascending and checking the k-th deadline is at least k is
// sufficient.
func fitsDeadlines(deadlines []int) bool {
	slices.Sort(deadlines)
	for i, d := range deadlines {
		if d < i+1 {
			return false
		}
	}
	return true
}
