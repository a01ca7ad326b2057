package model

import (
	"time"
)

// Session is a scheduled screening of a film in one of the rooms. The film
// descriptor is denormalized at creation time from the catalog service and is
// never re-validated afterwards.
type Session struct {
	ID              uint      `gorm:"primaryKey"`
	FilmTitle       string    `gorm:"size:100;not null"`
	FilmDurationMin int       `gorm:"not null"`
	FilmGenre       string    `gorm:"size:50"`
	FilmAuthor      string    `gorm:"size:100"`
	FilmReleaseDate time.Time
	Room            int       `gorm:"not null;uniqueIndex:idx_sessions_room_slot"`
	Price           float64   `gorm:"not null"`
	StartsAt        time.Time `gorm:"not null;uniqueIndex:idx_sessions_room_slot"`
	Active          bool      `gorm:"not null"`
}

// Reservation holds a foreign key to its session; the set of reservations of a
// session is derived by an indexed query, the session row is never rewritten
// when reservations come and go.
type Reservation struct {
	ID            string `gorm:"primaryKey;size:36"`
	ClientID      string `gorm:"size:36;not null;index"`
	SessionID     uint   `gorm:"not null;index"`
	Confirmed     bool   `gorm:"not null"`
	Active        bool   `gorm:"not null"`
	StatusMessage string `gorm:"size:120"`
}
