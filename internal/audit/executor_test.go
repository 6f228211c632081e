package audit

import (
	"context"
	"reflect"
	"testing"

	"rotaudit/domain/physics"
	"rotaudit/domain/rotation"
)

func testCorpus() []rotation.Curve {
	return []rotation.Curve{
		flatCurve("UGC2885", 8, 30, 300, 210),
		flatCurve("DDO154", 7, 3, 48, 22),
		flatCurve("NGC6503", 10, 10, 120, 85),
		flatCurve("TINY", 4, 5, 100, 80), // below the sample threshold
	}
}

func TestEvaluateAll_MatchesSequentialEvaluation(t *testing.T) {
	evaluator := NewEvaluator(physics.NewModel(physics.DefaultConstants()), 5)
	concurrent := NewConcurrentEvaluator(evaluator, 3)

	got, excluded, err := concurrent.EvaluateAll(context.Background(), testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if excluded != 1 {
		t.Errorf("expected 1 excluded curve, got %d", excluded)
	}

	// Sequential reference, sorted the same way
	var want []rotation.Evaluation
	for _, c := range testCorpus() {
		if evaluator.Eligible(c) {
			want = append(want, evaluator.Evaluate(c))
		}
	}
	SortEvaluations(want)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("concurrent fold diverged from sequential fold:\n%+v\n%+v", got, want)
	}
}

func TestEvaluateAll_DeterministicAcrossRuns(t *testing.T) {
	evaluator := NewEvaluator(physics.NewModel(physics.DefaultConstants()), 5)
	concurrent := NewConcurrentEvaluator(evaluator, 8)

	first, _, err := concurrent.EvaluateAll(context.Background(), testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := concurrent.EvaluateAll(context.Background(), testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over an unchanged corpus must be identical")
	}
}

func TestEvaluateAll_ResultsAreNameSorted(t *testing.T) {
	evaluator := NewEvaluator(physics.NewModel(physics.DefaultConstants()), 5)
	concurrent := NewConcurrentEvaluator(evaluator, 2)

	results, _, err := concurrent.EvaluateAll(context.Background(), testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(results); i++ {
		if results[i-1].Name > results[i].Name {
			t.Fatalf("results not sorted: %s before %s", results[i-1].Name, results[i].Name)
		}
	}
}
