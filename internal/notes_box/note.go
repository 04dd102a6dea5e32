// Package notes_box keeps the conditioner's notes on players. Players only
// get to read the notes marked public.
package notes_box

import (
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

type Note struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId"`
	AuthorID string    `json:"authorId"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
	IsPublic bool      `json:"isPublic"`
}

func PublicOnly(notes []Note) []Note {
	public := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.IsPublic {
			public = append(public, n)
		}
	}
	return public
}
