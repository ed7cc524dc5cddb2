package sequencing

import (
	"container/heap"

	"github.com/me/jobseq/pkg/model"
)

// candidate is a job plus its position in the caller's input.
type candidate struct {
	job   model.Job
	order int
}

// profitQueue implements heap.Interface for candidates.
// Higher Profit pops first; equal profits pop in input order.
type profitQueue []candidate

func (pq profitQueue) Len() int { return len(pq) }

func (pq profitQueue) Less(i, j int) bool {
	if pq[i].job.Profit == pq[j].job.Profit {
		return pq[i].order < pq[j].order
	}
	return pq[i].job.Profit > pq[j].job.Profit
}

func (pq profitQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

// Push appends a candidate. Called by heap.Push, do not call directly.
func (pq *profitQueue) Push(x any) {
	*pq = append(*pq, x.(candidate))
}

// Pop removes the last element. Called by heap.Pop, do not call directly.
func (pq *profitQueue) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]
	return c
}

func pushCandidate(pq *profitQueue, c candidate) {
	heap.Push(pq, c)
}

// popCandidate removes and returns the most profitable candidate.
func popCandidate(pq *profitQueue) candidate {
	return heap.Pop(pq).(candidate)
}
