package usecase

import (
	"math"

	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

// Resolver сопоставляет probe-эмбеддинг с зарегистрированными.
// Дистанция считается ровно один раз и только здесь; хранилище отдаёт
// кандидатов без какого-либо порядка.
type Resolver struct {
	threshold float64
}

func NewResolver(threshold float64) *Resolver {
	return &Resolver{threshold: threshold}
}

// Resolve выполняет полный перебор кандидатов по L2-дистанции: O(N) на запрос.
// Пустой набор кандидатов — Unknown. Совпадение засчитывается только при
// дистанции строго меньше порога. При равных минимумах детерминированно
// выбирается лексикографически наименьший roll number.
func (r *Resolver) Resolve(probe []float32, candidates []domain.FaceEmbedding) (*domain.RecognitionResult, error) {
	if len(candidates) == 0 {
		return domain.NewUnknownResult(0), nil
	}

	var (
		bestRoll     string
		bestDistance = math.Inf(1)
	)

	for _, candidate := range candidates {
		distance, err := euclideanDistance(probe, candidate.Vector)
		if err != nil {
			return nil, e.Wrap(candidate.RollNumber, err)
		}

		if distance < bestDistance || (distance == bestDistance && candidate.RollNumber < bestRoll) {
			bestDistance = distance
			bestRoll = candidate.RollNumber
		}
	}

	return r.FromNearest(bestRoll, bestDistance, true), nil
}

// FromNearest применяет порог к уже найденному ближайшему кандидату
// (например, из ANN-индекса, считающего в той же метрике).
func (r *Resolver) FromNearest(rollNumber string, distance float64, found bool) *domain.RecognitionResult {
	if !found {
		return domain.NewUnknownResult(0)
	}

	if distance < r.threshold {
		return domain.NewMatchedResult(rollNumber, distance)
	}

	return domain.NewUnknownResult(distance)
}

// euclideanDistance — L2-дистанция с накоплением в float64.
func euclideanDistance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, e.ErrVectorDimensionMismatch
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return math.Sqrt(sum), nil
}
