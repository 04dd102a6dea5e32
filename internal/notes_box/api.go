package notes_box

import "context"

var _ Api = (*Repo)(nil)
var _ Api = (*MemApi)(nil)

type Api interface {
	// Add stores the note under a new id. ErrPlayerNotFound from the
	// conditioning package is returned for an unknown player.
	Add(ctx context.Context, note Note) (*Note, error)
	Get(ctx context.Context, playerID, id string) (*Note, error)
	// Update changes the text and visibility, the rest stays.
	Update(ctx context.Context, note Note) error
	Delete(ctx context.Context, playerID, id string) error
	// List returns the player's notes, newest first.
	List(ctx context.Context, playerID string) ([]Note, error)
}
