package store

import (
	"time"
)

type Activity struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Level     string    `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
