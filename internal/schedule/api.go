package schedule

import "context"

var _ Api = (*Repo)(nil)
var _ Api = (*MemApi)(nil)

type Api interface {
	Add(ctx context.Context, event Event) (*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, event Event) error
	Delete(ctx context.Context, id string) error
	// List returns the events within the range, ordered by date and time.
	List(ctx context.Context, r Range) ([]Event, error)
}
