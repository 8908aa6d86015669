package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

func embedding(rollNumber string, values ...float32) domain.FaceEmbedding {
	return domain.FaceEmbedding{RollNumber: rollNumber, Vector: values}
}

func TestResolveMatchesNearestUnderThreshold(t *testing.T) {
	resolver := NewResolver(1.2)

	candidates := []domain.FaceEmbedding{
		embedding("A1", 0.8, 0),
		embedding("B2", 2.0, 0),
	}

	result, err := resolver.Resolve([]float32{0, 0}, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != domain.OutcomeMatched {
		t.Fatalf("expected matched outcome, got %v", result.Outcome)
	}
	if result.RollNumber != "A1" {
		t.Errorf("expected roll number A1, got %q", result.RollNumber)
	}
	if math.Abs(result.Distance-0.8) > 1e-9 {
		t.Errorf("expected distance 0.8, got %v", result.Distance)
	}
}

func TestResolveUnknownWhenAllBeyondThreshold(t *testing.T) {
	resolver := NewResolver(1.2)

	candidates := []domain.FaceEmbedding{
		embedding("A1", 1.5, 0),
		embedding("B2", 0, 1.5),
	}

	result, err := resolver.Resolve([]float32{0, 0}, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != domain.OutcomeUnknown {
		t.Fatalf("expected unknown outcome, got %v", result.Outcome)
	}
	if result.String() != domain.ResultUnknown {
		t.Errorf("expected %q, got %q", domain.ResultUnknown, result.String())
	}
}

func TestResolveUnknownOnEmptyRoster(t *testing.T) {
	resolver := NewResolver(1.2)

	result, err := resolver.Resolve([]float32{1, 2, 3}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != domain.OutcomeUnknown {
		t.Fatalf("expected unknown outcome, got %v", result.Outcome)
	}
}

func TestResolveDistanceExactlyAtThresholdIsUnknown(t *testing.T) {
	resolver := NewResolver(1.0)

	candidates := []domain.FaceEmbedding{embedding("A1", 1.0, 0)}

	result, err := resolver.Resolve([]float32{0, 0}, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != domain.OutcomeUnknown {
		t.Fatalf("expected strict threshold comparison, got %v", result.Outcome)
	}
}

func TestResolveTieBreaksLexicographically(t *testing.T) {
	resolver := NewResolver(1.2)

	// Два кандидата на одинаковой дистанции от probe
	candidates := []domain.FaceEmbedding{
		embedding("B2", 1.0, 0),
		embedding("A1", -1.0, 0),
	}

	for range [10]struct{}{} {
		result, err := resolver.Resolve([]float32{0, 0}, candidates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RollNumber != "A1" {
			t.Fatalf("expected deterministic tie-break to A1, got %q", result.RollNumber)
		}
	}
}

func TestResolveDimensionMismatch(t *testing.T) {
	resolver := NewResolver(1.2)

	candidates := []domain.FaceEmbedding{embedding("A1", 1, 2, 3)}

	_, err := resolver.Resolve([]float32{1, 2}, candidates)
	if !errors.Is(err, e.ErrVectorDimensionMismatch) {
		t.Fatalf("expected dimension mismatch error, got %v", err)
	}
}

func TestFromNearest(t *testing.T) {
	resolver := NewResolver(1.2)

	tests := []struct {
		name       string
		rollNumber string
		distance   float64
		found      bool
		outcome    domain.RecognitionOutcome
		wantRoll   string
	}{
		{"match under threshold", "C3", 0.4, true, domain.OutcomeMatched, "C3"},
		{"beyond threshold", "C3", 1.2, true, domain.OutcomeUnknown, ""},
		{"empty index", "", 0, false, domain.OutcomeUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := resolver.FromNearest(tt.rollNumber, tt.distance, tt.found)
			if result.Outcome != tt.outcome {
				t.Fatalf("expected outcome %v, got %v", tt.outcome, result.Outcome)
			}
			if result.RollNumber != tt.wantRoll {
				t.Errorf("expected roll number %q, got %q", tt.wantRoll, result.RollNumber)
			}
		})
	}
}

func TestEuclideanDistanceAccumulatesInFloat64(t *testing.T) {
	// 4096 одинаковых маленьких компонент: при накоплении в float32
	// результат заметно уплывает.
	const dim = 4096
	a := make([]float32, dim)
	b := make([]float32, dim)
	for i := range a {
		a[i] = 0.001
	}

	got, err := euclideanDistance(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := math.Sqrt(float64(dim) * 0.001 * 0.001)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("expected %v, got %v", want, got)
	}
}
