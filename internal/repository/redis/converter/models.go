package converter

type FaceEmbeddingRedisModel struct {
	RollNumber string    `json:"roll_number"`
	Vector     []float32 `json:"vector"`
}
