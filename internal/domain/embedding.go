package domain

// FaceEmbedding — зарегистрированный эмбеддинг лица одного студента.
// Размерность вектора фиксирована для всего хранилища.
type FaceEmbedding struct {
	RollNumber string
	Vector     []float32
}

func NewFaceEmbedding(rollNumber string, vector []float32) *FaceEmbedding {
	return &FaceEmbedding{
		RollNumber: rollNumber,
		Vector:     vector,
	}
}

// Payload описывает дополнительную информацию вектора в ANN-индексе
type Payload map[string]any

func NewIndexPayload(rollNumber string, modelVersion string, createdAt int64) Payload {
	return Payload{
		"roll_number":   rollNumber,
		"model_version": modelVersion,
		"created_at":    createdAt,
	}
}
