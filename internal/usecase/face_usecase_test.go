package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/vidyarthi-tech/face-backend/internal/cfg"
	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(error, string, ...any) {}

type mockStudentRepo struct {
	roster    []domain.FaceEmbedding
	rosterErr error

	enrolled  bool
	statusErr error
}

func (m *mockStudentRepo) GetAllWithEmbedding(context.Context) ([]domain.FaceEmbedding, error) {
	return m.roster, m.rosterErr
}

func (m *mockStudentRepo) UpsertEmbedding(context.Context, string, []float32) error {
	return nil
}

func (m *mockStudentRepo) GetStatus(context.Context, string) (bool, error) {
	return m.enrolled, m.statusErr
}

type mockExtractor struct {
	extractRes *ExtractRes
	extractErr error
	gotEnforce bool

	detectRes *DetectRes
	detectErr error
}

func (m *mockExtractor) Extract(_ context.Context, req *ExtractReq) (*ExtractRes, error) {
	m.gotEnforce = req.EnforceDetection
	return m.extractRes, m.extractErr
}

func (m *mockExtractor) Detect(context.Context, *DetectReq) (*DetectRes, error) {
	return m.detectRes, m.detectErr
}

type mockCacheRepo struct {
	roster []domain.FaceEmbedding
	hit    bool
	getErr error

	setCalls    int
	deleteCalls int
}

func (m *mockCacheRepo) GetRoster(context.Context) ([]domain.FaceEmbedding, bool, error) {
	return m.roster, m.hit, m.getErr
}

func (m *mockCacheRepo) SetRoster(context.Context, []domain.FaceEmbedding) error {
	m.setCalls++
	return nil
}

func (m *mockCacheRepo) DeleteRoster(context.Context) error {
	m.deleteCalls++
	return nil
}

type mockAnnIndex struct {
	rollNumber string
	distance   float64
	found      bool
	err        error
}

func (m *mockAnnIndex) Upsert(context.Context, *domain.FaceEmbedding, string) error {
	return nil
}

func (m *mockAnnIndex) Nearest(context.Context, []float32) (string, float64, bool, error) {
	return m.rollNumber, m.distance, m.found, m.err
}

func testRecognitionCfg() *cfg.RecognitionCfg {
	return &cfg.RecognitionCfg{
		Threshold:  1.2,
		VectorSize: 3,
	}
}

func newTestFaceUC(repo *mockStudentRepo, extractor *mockExtractor, cache *mockCacheRepo, index AnnIndex) *FaceUseCase {
	recognitionCfg := testRecognitionCfg()
	return NewFaceUC(
		repo, nil, extractor, nil, index, cache, nil, nil,
		NewResolver(recognitionCfg.Threshold), recognitionCfg, noopLogger{},
	)
}

func testImagePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}

	return buf.Bytes()
}

func testFramePayload(t *testing.T) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(testImagePNG(t))
}

func TestRecognizeFrameMatchesEnrolledStudent(t *testing.T) {
	repo := &mockStudentRepo{roster: []domain.FaceEmbedding{
		{RollNumber: "A1", Vector: []float32{1, 0, 0}},
		{RollNumber: "B2", Vector: []float32{0, 5, 0}},
	}}
	extractor := &mockExtractor{extractRes: NewExtractRes(true, []float32{1, 0.1, 0}, 0.98, "v1")}
	cache := &mockCacheRepo{}

	uc := newTestFaceUC(repo, extractor, cache, nil)

	result, err := uc.RecognizeFrame(context.Background(), testFramePayload(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.String() != "A1" {
		t.Errorf("expected A1, got %q", result.String())
	}
	if extractor.gotEnforce {
		t.Error("streaming recognition must not enforce detection")
	}
}

func TestRecognizeFrameUndecodablePayloadIsNoFace(t *testing.T) {
	uc := newTestFaceUC(&mockStudentRepo{}, &mockExtractor{}, &mockCacheRepo{}, nil)

	result, err := uc.RecognizeFrame(context.Background(), "not base64 at all!!!")
	if err != nil {
		t.Fatalf("expected degraded result without error, got %v", err)
	}
	if result.String() != domain.ResultNoFace {
		t.Errorf("expected %q, got %q", domain.ResultNoFace, result.String())
	}
}

func TestRecognizeFrameNoFaceInFrame(t *testing.T) {
	extractor := &mockExtractor{extractRes: NewExtractRes(false, nil, 0, "v1")}
	uc := newTestFaceUC(&mockStudentRepo{}, extractor, &mockCacheRepo{}, nil)

	result, err := uc.RecognizeFrame(context.Background(), testFramePayload(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != domain.OutcomeNoFace {
		t.Errorf("expected no-face outcome, got %v", result.Outcome)
	}
}

func TestRecognizeFrameExtractorFailureDegradesToSentinel(t *testing.T) {
	extractor := &mockExtractor{extractErr: errors.New("extractor down")}
	uc := newTestFaceUC(&mockStudentRepo{}, extractor, &mockCacheRepo{}, nil)

	result, err := uc.RecognizeFrame(context.Background(), testFramePayload(t))
	if err == nil {
		t.Fatal("expected error for logging")
	}
	if result == nil || result.Outcome != domain.OutcomeNoFace {
		t.Fatalf("expected usable sentinel result, got %+v", result)
	}
}

func TestRecognizeFrameUsesCachedRoster(t *testing.T) {
	repo := &mockStudentRepo{rosterErr: errors.New("db must not be hit")}
	cache := &mockCacheRepo{
		roster: []domain.FaceEmbedding{{RollNumber: "C3", Vector: []float32{0, 0, 0}}},
		hit:    true,
	}
	extractor := &mockExtractor{extractRes: NewExtractRes(true, []float32{0.1, 0, 0}, 0.9, "v1")}

	uc := newTestFaceUC(repo, extractor, cache, nil)

	result, err := uc.RecognizeFrame(context.Background(), testFramePayload(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "C3" {
		t.Errorf("expected cached roster match C3, got %q", result.String())
	}
}

func TestRecognizeFramePrefersAnnIndex(t *testing.T) {
	repo := &mockStudentRepo{rosterErr: errors.New("full scan must not run")}
	index := &mockAnnIndex{rollNumber: "D4", distance: 0.5, found: true}
	extractor := &mockExtractor{extractRes: NewExtractRes(true, []float32{1, 2, 3}, 0.9, "v1")}

	uc := newTestFaceUC(repo, extractor, &mockCacheRepo{}, index)

	result, err := uc.RecognizeFrame(context.Background(), testFramePayload(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.String() != "D4" {
		t.Errorf("expected ANN match D4, got %q", result.String())
	}
}

func TestAnalyzeFrameRoundsConfidence(t *testing.T) {
	extractor := &mockExtractor{detectRes: NewDetectRes(true, 0.987654321)}
	uc := newTestFaceUC(&mockStudentRepo{}, extractor, &mockCacheRepo{}, nil)

	detection, err := uc.AnalyzeFrame(context.Background(), testFramePayload(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !detection.FaceFound {
		t.Fatal("expected face found")
	}
	if detection.Confidence != 0.9877 {
		t.Errorf("expected confidence rounded to 0.9877, got %v", detection.Confidence)
	}
}

func TestAnalyzeFrameBadPayloadIsNotFound(t *testing.T) {
	uc := newTestFaceUC(&mockStudentRepo{}, &mockExtractor{}, &mockCacheRepo{}, nil)

	detection, err := uc.AnalyzeFrame(context.Background(), "@@@")
	if err != nil {
		t.Fatalf("expected degraded result without error, got %v", err)
	}
	if detection.FaceFound || detection.Confidence != 0 {
		t.Errorf("expected {false, 0}, got %+v", detection)
	}
}

func TestEnrollValidation(t *testing.T) {
	uc := newTestFaceUC(&mockStudentRepo{}, &mockExtractor{}, &mockCacheRepo{}, nil)

	tests := []struct {
		name    string
		req     *EnrollReq
		wantErr error
	}{
		{"empty roll number", NewEnrollReq("  ", FaceImage{Data: []byte{1}}), e.ErrRollNumberRequired},
		{"no image", NewEnrollReq("A1", FaceImage{}), e.ErrNoImage},
		{"bad image bytes", NewEnrollReq("A1", FaceImage{Data: []byte("not an image")}), e.ErrBadImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Enroll(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEnrollNoFaceIsHardError(t *testing.T) {
	extractor := &mockExtractor{extractRes: NewExtractRes(false, nil, 0, "v1")}
	uc := newTestFaceUC(&mockStudentRepo{}, extractor, &mockCacheRepo{}, nil)

	req := NewEnrollReq("A1", FaceImage{Data: testImagePNG(t), MimeType: "image/png"})

	_, err := uc.Enroll(context.Background(), req)
	if !errors.Is(err, e.ErrNoFaceDetected) {
		t.Fatalf("expected no face error, got %v", err)
	}
	if !extractor.gotEnforce {
		t.Error("enrollment must enforce detection")
	}
}

func TestEnrollRejectsWrongDimension(t *testing.T) {
	extractor := &mockExtractor{extractRes: NewExtractRes(true, []float32{1, 2}, 0.9, "v1")}
	uc := newTestFaceUC(&mockStudentRepo{}, extractor, &mockCacheRepo{}, nil)

	req := NewEnrollReq("A1", FaceImage{Data: testImagePNG(t), MimeType: "image/png"})

	_, err := uc.Enroll(context.Background(), req)
	if !errors.Is(err, e.ErrVectorDimensionMismatch) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
}

func TestGetEnrollmentStatus(t *testing.T) {
	repo := &mockStudentRepo{enrolled: true}
	uc := newTestFaceUC(repo, &mockExtractor{}, &mockCacheRepo{}, nil)

	enrolled, err := uc.GetEnrollmentStatus(context.Background(), "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !enrolled {
		t.Error("expected enrolled=true")
	}

	if _, err = uc.GetEnrollmentStatus(context.Background(), "   "); !errors.Is(err, e.ErrRollNumberRequired) {
		t.Fatalf("expected roll number validation error, got %v", err)
	}
}
