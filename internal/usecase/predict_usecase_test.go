package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

type mockPredictInfra struct {
	gotFeatures []float64

	examScore float64
	examErr   error

	dropoutLabel       string
	dropoutProbability float64
	dropoutErr         error
}

func (m *mockPredictInfra) PredictExamScore(_ context.Context, features []float64) (float64, error) {
	m.gotFeatures = features
	return m.examScore, m.examErr
}

func (m *mockPredictInfra) PredictDropout(_ context.Context, features []float64) (string, float64, error) {
	m.gotFeatures = features
	return m.dropoutLabel, m.dropoutProbability, m.dropoutErr
}

func validFeaturesReq() *StudentFeaturesReq {
	return &StudentFeaturesReq{
		Age:                    21,
		Gender:                 "Female",
		StudyHoursPerDay:       3.5,
		SocialMediaHours:       2,
		PartTimeJob:            "Yes",
		AttendancePercentage:   91.5,
		SleepHours:             7,
		DietQuality:            "Good",
		ExerciseHours:          1.5,
		ParentalEducationLevel: "Bachelor",
		MentalHealth:           6,
	}
}

func TestPredictExamScoreEncodesFeaturesInModelOrder(t *testing.T) {
	infra := &mockPredictInfra{examScore: 72.4567}
	uc := NewPredictUC(infra, noopLogger{})

	res, err := uc.PredictExamScore(context.Background(), validFeaturesReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{21, 0, 3.5, 2, 1, 91.5, 7, 1, 1.5, 2, 6}
	if len(infra.gotFeatures) != len(want) {
		t.Fatalf("expected %d features, got %d", len(want), len(infra.gotFeatures))
	}
	for i := range want {
		if infra.gotFeatures[i] != want[i] {
			t.Errorf("feature %d: expected %v, got %v", i, want[i], infra.gotFeatures[i])
		}
	}

	if math.Abs(res.Score-72.46) > 1e-9 {
		t.Errorf("expected score rounded to 72.46, got %v", res.Score)
	}
}

func TestPredictExamScoreRejectsUnknownCategory(t *testing.T) {
	uc := NewPredictUC(&mockPredictInfra{}, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*StudentFeaturesReq)
	}{
		{"gender", func(r *StudentFeaturesReq) { r.Gender = "Other" }},
		{"part_time_job", func(r *StudentFeaturesReq) { r.PartTimeJob = "sometimes" }},
		{"diet_quality", func(r *StudentFeaturesReq) { r.DietQuality = "Excellent" }},
		{"parental_education_level", func(r *StudentFeaturesReq) { r.ParentalEducationLevel = "PhD" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFeaturesReq()
			tt.mutate(req)

			_, err := uc.PredictExamScore(context.Background(), req)
			if !errors.Is(err, e.ErrInvalidFeature) {
				t.Fatalf("expected invalid feature error, got %v", err)
			}
		})
	}
}

func TestPredictExamScoreCategoryIsCaseSensitive(t *testing.T) {
	uc := NewPredictUC(&mockPredictInfra{}, noopLogger{})

	req := validFeaturesReq()
	req.Gender = "female"

	_, err := uc.PredictExamScore(context.Background(), req)
	if !errors.Is(err, e.ErrInvalidFeature) {
		t.Fatalf("expected invalid feature error for lowercase category, got %v", err)
	}
}

func TestPredictDropoutRoundsProbability(t *testing.T) {
	infra := &mockPredictInfra{dropoutLabel: "No", dropoutProbability: 0.123456}
	uc := NewPredictUC(infra, noopLogger{})

	res, err := uc.PredictDropout(context.Background(), validFeaturesReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Label != "No" {
		t.Errorf("expected label No, got %q", res.Label)
	}
	if math.Abs(res.Probability-0.1235) > 1e-9 {
		t.Errorf("expected probability rounded to 0.1235, got %v", res.Probability)
	}
}

func TestPredictDropoutPropagatesInfraError(t *testing.T) {
	infraErr := errors.New("model unavailable")
	uc := NewPredictUC(&mockPredictInfra{dropoutErr: infraErr}, noopLogger{})

	_, err := uc.PredictDropout(context.Background(), validFeaturesReq())
	if !errors.Is(err, infraErr) {
		t.Fatalf("expected infra error to propagate, got %v", err)
	}
}
