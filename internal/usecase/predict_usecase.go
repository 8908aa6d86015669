package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

// Кодировки категориальных признаков. Значения зафиксированы на этапе
// обучения моделей и должны совпадать с ними байт в байт.
var (
	genderCodes = map[string]float64{
		"Male":   1,
		"Female": 0,
	}

	partTimeJobCodes = map[string]float64{
		"Yes": 1,
		"No":  0,
	}

	dietQualityCodes = map[string]float64{
		"Fair": 0,
		"Good": 1,
		"Poor": 2,
	}

	parentalEducationCodes = map[string]float64{
		"Master":      0,
		"High School": 1,
		"Bachelor":    2,
		"None":        3,
	}
)

// PredictUseCase реализует бизнес-логику предсказаний успеваемости.
// Масштабирование признаков живёт рядом с моделью на стороне ML-сервиса,
// здесь — только валидация и кодирование анкеты.
type PredictUseCase struct {
	predictInfra PredictInfra
	logger       logger.Logger
}

func NewPredictUC(predictInfra PredictInfra, logger logger.Logger) *PredictUseCase {
	return &PredictUseCase{
		predictInfra: predictInfra,
		logger:       logger,
	}
}

// PredictExamScore предсказывает экзаменационный балл по анкете студента.
func (p *PredictUseCase) PredictExamScore(ctx context.Context, req *StudentFeaturesReq) (*ExamScoreRes, error) {
	const op = "PredictUseCase.PredictExamScore"

	features, err := encodeFeatures(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	score, err := p.predictInfra.PredictExamScore(ctx, features)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ExamScoreRes{
		Score: decimal.NewFromFloat(score).Round(2).InexactFloat64(),
	}, nil
}

// PredictDropout предсказывает риск отчисления по той же анкете.
func (p *PredictUseCase) PredictDropout(ctx context.Context, req *StudentFeaturesReq) (*DropoutRes, error) {
	const op = "PredictUseCase.PredictDropout"

	features, err := encodeFeatures(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	label, probability, err := p.predictInfra.PredictDropout(ctx, features)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &DropoutRes{
		Label:       label,
		Probability: decimal.NewFromFloat(probability).Round(4).InexactFloat64(),
	}, nil
}

// encodeFeatures собирает вектор признаков в порядке, ожидаемом моделями.
func encodeFeatures(req *StudentFeaturesReq) ([]float64, error) {
	gender, err := encodeCategory("gender", req.Gender, genderCodes)
	if err != nil {
		return nil, err
	}

	partTimeJob, err := encodeCategory("part_time_job", req.PartTimeJob, partTimeJobCodes)
	if err != nil {
		return nil, err
	}

	dietQuality, err := encodeCategory("diet_quality", req.DietQuality, dietQualityCodes)
	if err != nil {
		return nil, err
	}

	parentalEducation, err := encodeCategory("parental_education_level", req.ParentalEducationLevel, parentalEducationCodes)
	if err != nil {
		return nil, err
	}

	return []float64{
		req.Age,
		gender,
		req.StudyHoursPerDay,
		req.SocialMediaHours,
		partTimeJob,
		req.AttendancePercentage,
		req.SleepHours,
		dietQuality,
		req.ExerciseHours,
		parentalEducation,
		float64(req.MentalHealth),
	}, nil
}

func encodeCategory(field, value string, codes map[string]float64) (float64, error) {
	code, ok := codes[value]
	if !ok {
		return 0, fmt.Errorf("%s=%q: %w", field, value, e.ErrInvalidFeature)
	}

	return code, nil
}
