package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(error, string, ...any) {}

type mockFaceUC struct {
	enrollRes *usecase.EnrollRes
	enrollErr error
	gotReq    *usecase.EnrollReq
}

func (m *mockFaceUC) Enroll(_ context.Context, req *usecase.EnrollReq) (*usecase.EnrollRes, error) {
	m.gotReq = req
	return m.enrollRes, m.enrollErr
}

func (m *mockFaceUC) RecognizeFrame(context.Context, string) (*domain.RecognitionResult, error) {
	return domain.NewNoFaceResult(), nil
}

func (m *mockFaceUC) AnalyzeFrame(context.Context, string) (*domain.Detection, error) {
	return domain.NewDetection(false, 0), nil
}

func (m *mockFaceUC) RecognizeImage(context.Context, []byte) (*domain.RecognitionResult, error) {
	return domain.NewNoFaceResult(), nil
}

func (m *mockFaceUC) GetEnrollmentStatus(context.Context, string) (bool, error) {
	return false, nil
}

type mockPredictUC struct {
	examRes    *usecase.ExamScoreRes
	examErr    error
	dropoutRes *usecase.DropoutRes
	dropoutErr error
}

func (m *mockPredictUC) PredictExamScore(context.Context, *usecase.StudentFeaturesReq) (*usecase.ExamScoreRes, error) {
	return m.examRes, m.examErr
}

func (m *mockPredictUC) PredictDropout(context.Context, *usecase.StudentFeaturesReq) (*usecase.DropoutRes, error) {
	return m.dropoutRes, m.dropoutErr
}

func enrollRequest(t *testing.T, rollNumber string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if rollNumber != "" {
		if err := writer.WriteField("roll_number", rollNumber); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "face.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/enroll", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestEnrollFaceSuccess(t *testing.T) {
	uc := &mockFaceUC{enrollRes: usecase.NewEnrollRes("A1", "event-1", "enrollments/A1/x.jpg")}
	handler := NewFaceHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	handler.enrollFace(rec, enrollRequest(t, "A1", []byte{0xFF, 0xD8, 0xFF}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "success" {
		t.Errorf("expected status success, got %v", body["status"])
	}
	if !strings.Contains(body["message"].(string), "A1") {
		t.Errorf("expected roll number in message, got %v", body["message"])
	}

	if uc.gotReq == nil || uc.gotReq.RollNumber != "A1" {
		t.Errorf("expected roll number A1 passed through, got %+v", uc.gotReq)
	}
}

func TestEnrollFaceUnknownStudentIs404(t *testing.T) {
	uc := &mockFaceUC{enrollErr: e.Wrap("enroll", e.ErrStudentNotFound)}
	handler := NewFaceHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	handler.enrollFace(rec, enrollRequest(t, "ZZ", []byte{1, 2, 3}))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEnrollFaceNoFaceIs400(t *testing.T) {
	uc := &mockFaceUC{enrollErr: e.Wrap("enroll", e.ErrNoFaceDetected)}
	handler := NewFaceHandler(uc, noopLogger{})

	rec := httptest.NewRecorder()
	handler.enrollFace(rec, enrollRequest(t, "A1", []byte{1, 2, 3}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEnrollFaceMissingRollNumber(t *testing.T) {
	handler := NewFaceHandler(&mockFaceUC{}, noopLogger{})

	rec := httptest.NewRecorder()
	handler.enrollFace(rec, enrollRequest(t, "", []byte{1, 2, 3}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEnrollFaceMissingImage(t *testing.T) {
	handler := NewFaceHandler(&mockFaceUC{}, noopLogger{})

	rec := httptest.NewRecorder()
	handler.enrollFace(rec, enrollRequest(t, "A1", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEnrollFaceRejectsNonMultipart(t *testing.T) {
	handler := NewFaceHandler(&mockFaceUC{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/enroll", strings.NewReader(`{"roll_number":"A1"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.enrollFace(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPredictExamScore(t *testing.T) {
	uc := &mockPredictUC{examRes: &usecase.ExamScoreRes{Score: 72.46}}
	handler := NewPredictHandler(uc, noopLogger{})

	body := `{"age": 21, "gender": "Female", "study_hours_per_day": 3.5, "social_media_hours": 2,
		"part_time_job": "Yes", "attendance_percentage": 91.5, "sleep_hours": 7, "diet_quality": "Good",
		"exercise_hours": 1.5, "parental_education_level": "Bachelor", "mental_health": 6}`

	req := httptest.NewRequest(http.MethodPost, "/predict/exam-score", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.predictExamScore(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var res map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if res["predicted_exam_score"] != 72.46 {
		t.Errorf("expected predicted_exam_score 72.46, got %v", res["predicted_exam_score"])
	}
}

func TestPredictExamScoreInvalidFeature(t *testing.T) {
	uc := &mockPredictUC{examErr: e.Wrap("predict", e.ErrInvalidFeature)}
	handler := NewPredictHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/predict/exam-score", strings.NewReader(`{"gender": "Other"}`))
	rec := httptest.NewRecorder()
	handler.predictExamScore(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPredictExamScoreMalformedJSON(t *testing.T) {
	handler := NewPredictHandler(&mockPredictUC{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/predict/exam-score", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	handler.predictExamScore(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPredictDropout(t *testing.T) {
	uc := &mockPredictUC{dropoutRes: &usecase.DropoutRes{Label: "No", Probability: 0.1235}}
	handler := NewPredictHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/predict/dropout", strings.NewReader(`{"gender": "Male",
		"part_time_job": "No", "diet_quality": "Fair", "parental_education_level": "None"}`))
	rec := httptest.NewRecorder()
	handler.predictDropout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var res map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if res["predicted_dropout"] != "No" {
		t.Errorf("expected label No, got %v", res["predicted_dropout"])
	}
	if res["dropout_probability"] != 0.1235 {
		t.Errorf("expected probability 0.1235, got %v", res["dropout_probability"])
	}
}

func TestHealthCheck(t *testing.T) {
	handler := NewFaceHandler(&mockFaceUC{}, noopLogger{})

	rec := httptest.NewRecorder()
	handler.healthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var res map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if res["status"] != "OK" {
		t.Errorf("expected status OK, got %v", res["status"])
	}
}
