package domain

import "time"

// Student описывает запись студента из общей БД платформы.
// Записи создаёт внешняя система; этот сервис только дописывает эмбеддинг лица.
type Student struct {
	ID         string
	RollNumber string
	Encoding   []float32 // nil до первой регистрации лица
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
