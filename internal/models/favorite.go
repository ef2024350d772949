package models

import (
	"fmt"
	"time"
)

// FavoriteEntry - запись в списке избранного пользователя для одного раздела.
type FavoriteEntry struct {
	ID        int64     `json:"id,omitempty"`
	ChatID    int64     `json:"chat_id"`
	Category  Category  `json:"-"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (e FavoriteEntry) String() string {
	return fmt.Sprintf("%s - %s", e.Name, e.Comment)
}
