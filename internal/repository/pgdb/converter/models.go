package converter

import (
	"time"

	"github.com/vidyarthi-tech/face-backend/internal/usecase"
)

// StudentModel представляет запись таблицы students в PostgreSQL.
type StudentModel struct {
	ID         string     `db:"id"`
	RollNumber string     `db:"roll_number"`
	Encoding   []float32  `db:"encoding"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// EmbeddingModel — проекция students на пару (roll_number, encoding).
type EmbeddingModel struct {
	RollNumber string    `db:"roll_number"`
	Encoding   []float32 `db:"encoding"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	RollNumber  string                  `db:"roll_number"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
