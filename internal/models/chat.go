package models

import "time"

// ChatTurn is one stored (message, reply) exchange.
type ChatTurn struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"timestamp"`
}
