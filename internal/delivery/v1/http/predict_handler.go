package http

import (
	"encoding/json"
	"net/http"

	"github.com/jimlawless/whereami"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

type PredictHandler struct {
	predictUsecase usecase.PredictUC
	logger         logger.Logger
}

func NewPredictHandler(predictUsecase usecase.PredictUC, logger logger.Logger) *PredictHandler {
	return &PredictHandler{predictUsecase: predictUsecase, logger: logger}
}

// studentInput — анкета студента в формате обучающего датасета.
type studentInput struct {
	Age                    float64 `json:"age"`
	Gender                 string  `json:"gender"`
	StudyHoursPerDay       float64 `json:"study_hours_per_day"`
	SocialMediaHours       float64 `json:"social_media_hours"`
	PartTimeJob            string  `json:"part_time_job"`
	AttendancePercentage   float64 `json:"attendance_percentage"`
	SleepHours             float64 `json:"sleep_hours"`
	DietQuality            string  `json:"diet_quality"`
	ExerciseHours          float64 `json:"exercise_hours"`
	ParentalEducationLevel string  `json:"parental_education_level"`
	MentalHealth           int     `json:"mental_health"`
}

func (s *studentInput) toReq() *usecase.StudentFeaturesReq {
	return &usecase.StudentFeaturesReq{
		Age:                    s.Age,
		Gender:                 s.Gender,
		StudyHoursPerDay:       s.StudyHoursPerDay,
		SocialMediaHours:       s.SocialMediaHours,
		PartTimeJob:            s.PartTimeJob,
		AttendancePercentage:   s.AttendancePercentage,
		SleepHours:             s.SleepHours,
		DietQuality:            s.DietQuality,
		ExerciseHours:          s.ExerciseHours,
		ParentalEducationLevel: s.ParentalEducationLevel,
		MentalHealth:           s.MentalHealth,
	}
}

// predictExamScore
//
//	@Summary		Прогноз экзаменационного балла
//	@Description	Предсказывает балл по анкете студента
//	@Tags			predictions
//	@Accept			json
//	@Produce		json
//	@Param			input	body		studentInput			true	"Анкета студента"
//	@Success		200		{object}	map[string]interface{}	"Прогноз"
//	@Failure		400		{object}	ErrorResponse			"Недопустимое значение признака"
//	@Router			/predict/exam-score [post]
func (p *PredictHandler) predictExamScore(w http.ResponseWriter, r *http.Request) {
	input, err := p.decodeInput(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.predictUsecase.PredictExamScore(r.Context(), input.toReq())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"predicted_exam_score": res.Score,
	})
}

// predictDropout
//
//	@Summary		Прогноз риска отчисления
//	@Tags			predictions
//	@Accept			json
//	@Produce		json
//	@Param			input	body		studentInput			true	"Анкета студента"
//	@Success		200		{object}	map[string]interface{}	"Прогноз"
//	@Failure		400		{object}	ErrorResponse			"Недопустимое значение признака"
//	@Router			/predict/dropout [post]
func (p *PredictHandler) predictDropout(w http.ResponseWriter, r *http.Request) {
	input, err := p.decodeInput(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.predictUsecase.PredictDropout(r.Context(), input.toReq())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"predicted_dropout":   res.Label,
		"dropout_probability": res.Probability,
	})
}

func (p *PredictHandler) decodeInput(r *http.Request) (*studentInput, error) {
	var input studentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	return &input, nil
}
