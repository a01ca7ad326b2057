// Package remote defines the collaborator services this process only
// consumes: the clients directory, the film catalog and the reservation
// lookup exposed by the reservations deployment. The core never writes
// through these interfaces.
package remote

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by every lookup whose subject does not exist on
// the collaborator side. Callers map it to their own taxonomy.
var ErrNotFound = errors.New("remote resource not found")

type ClientSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type FilmDescriptor struct {
	Title       string    `json:"title"`
	DurationMin int       `json:"duration_min"`
	Genre       string    `json:"genre"`
	Author      string    `json:"author"`
	ReleaseDate time.Time `json:"release_date"`
}

type ReservationSnapshot struct {
	Confirmed bool   `json:"confirmed"`
	Active    bool   `json:"active"`
	Message   string `json:"message"`
}

type ClientDirectory interface {
	GetClientByID(ctx context.Context, clientID string) (*ClientSnapshot, error)
}

// FilmCatalog looks a film up by title. The catalog endpoint takes no film
// parameter; the title travels as per-request correlation metadata, which is
// why it is an explicit argument here and a header on the wire, never
// process-wide state.
type FilmCatalog interface {
	GetFilmByTitle(ctx context.Context, correlationTitle string) (*FilmDescriptor, error)
}

// ReservationLookup is served by the reservations deployment. A reservation
// owned by a different client is indistinguishable from an absent one.
type ReservationLookup interface {
	GetReservation(ctx context.Context, clientID, reservationID string) (*ReservationSnapshot, error)
}
