package domain

// RecognitionOutcome — исход обработки одного кадра в канале распознавания.
type RecognitionOutcome int

const (
	OutcomeMatched RecognitionOutcome = iota
	OutcomeUnknown
	OutcomeNoFace
)

// Текстовые значения, которые уходят клиенту как есть.
const (
	ResultUnknown = "Unknown"
	ResultNoFace  = "No face detected"
)

// RecognitionResult — результат распознавания одного кадра. Не персистится.
type RecognitionResult struct {
	Outcome    RecognitionOutcome
	RollNumber string  // заполнен только при OutcomeMatched
	Distance   float64 // L2-дистанция до ближайшего кандидата, 0 при OutcomeNoFace
}

func NewMatchedResult(rollNumber string, distance float64) *RecognitionResult {
	return &RecognitionResult{Outcome: OutcomeMatched, RollNumber: rollNumber, Distance: distance}
}

func NewUnknownResult(distance float64) *RecognitionResult {
	return &RecognitionResult{Outcome: OutcomeUnknown, Distance: distance}
}

func NewNoFaceResult() *RecognitionResult {
	return &RecognitionResult{Outcome: OutcomeNoFace}
}

// String возвращает представление результата для текстового протокола.
func (r *RecognitionResult) String() string {
	switch r.Outcome {
	case OutcomeMatched:
		return r.RollNumber
	case OutcomeUnknown:
		return ResultUnknown
	default:
		return ResultNoFace
	}
}

// Detection — результат локализации лица без вычисления эмбеддинга.
type Detection struct {
	FaceFound  bool
	Confidence float64 // [0,1], округлена до 4 знаков
}

func NewDetection(faceFound bool, confidence float64) *Detection {
	return &Detection{FaceFound: faceFound, Confidence: confidence}
}
