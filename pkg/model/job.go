package model

import "time"

// Job is a unit of work that occupies exactly one time slot.
// It earns Profit only when placed in a slot at or before Deadline.
type Job struct {
	ID       string `json:"id" yaml:"id"`
	Deadline int    `json:"deadline" yaml:"deadline"` // 1-indexed, inclusive
	Profit   int    `json:"profit" yaml:"profit"`
}

// Assignment places a Job into a 1-indexed time slot.
type Assignment struct {
	Slot int `json:"slot"`
	Job  Job `json:"job"`
}

// Schedule is the result of sequencing a set of jobs.
type Schedule struct {
	Sequence    []string     `json:"sequence"` // selected job IDs, ascending deadline
	Slots       []Assignment `json:"slots"`
	Dropped     []string     `json:"dropped"` // unselected job IDs, input order
	TotalProfit int          `json:"total_profit"`
	MaxDeadline int          `json:"max_deadline"`
}

// Run is a persisted solve: the input jobs and the schedule produced for them.
type Run struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Jobs      []Job     `json:"jobs"`
	Schedule  Schedule  `json:"schedule"`
	CreatedAt time.Time `json:"created_at"`
}

// RunSummary is the list view of a Run.
type RunSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	JobCount    int       `json:"job_count"`
	Selected    int       `json:"selected"`
	TotalProfit int       `json:"total_profit"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary returns the list view of r.
func (r *Run) Summary() RunSummary {
	return RunSummary{
		ID:          r.ID,
		Name:        r.Name,
		JobCount:    len(r.Jobs),
		Selected:    len(r.Schedule.Sequence),
		TotalProfit: r.Schedule.TotalProfit,
		CreatedAt:   r.CreatedAt,
	}
}
