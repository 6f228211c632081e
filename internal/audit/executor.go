package audit

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"rotaudit/domain/rotation"
)

// ConcurrentEvaluator runs per-curve evaluation with bounded parallelism.
// Curves are independent of each other, so the fold is a plain associative
// merge; determinism comes from the post-fold name sort, not from ordering
// the workers.
type ConcurrentEvaluator struct {
	evaluator *Evaluator
	sem       *semaphore.Weighted
}

// NewConcurrentEvaluator creates an executor allowing at most workers
// simultaneous evaluations.
func NewConcurrentEvaluator(evaluator *Evaluator, workers int) *ConcurrentEvaluator {
	if workers < 1 {
		workers = 1
	}
	return &ConcurrentEvaluator{
		evaluator: evaluator,
		sem:       semaphore.NewWeighted(int64(workers)),
	}
}

// EvaluateAll scores every eligible curve and returns the name-sorted
// evaluations plus the count of curves excluded by the sample filter.
func (ce *ConcurrentEvaluator) EvaluateAll(ctx context.Context, curves []rotation.Curve) ([]rotation.Evaluation, int, error) {
	eligible := make([]rotation.Curve, 0, len(curves))
	excluded := 0
	for _, c := range curves {
		if ce.evaluator.Eligible(c) {
			eligible = append(eligible, c)
		} else {
			excluded++
		}
	}

	results := make([]rotation.Evaluation, len(eligible))
	var wg sync.WaitGroup

	for i, curve := range eligible {
		if err := ce.sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, excluded, err
		}

		wg.Add(1)
		go func(idx int, c rotation.Curve) {
			defer wg.Done()
			defer ce.sem.Release(1)
			results[idx] = ce.evaluator.Evaluate(c)
		}(i, curve)
	}

	wg.Wait()

	SortEvaluations(results)
	return results, excluded, nil
}
