package notes_box

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/telemetry/tracing"
	"github.com/2beens/kondisca/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo keeps notes in the note table, created by the conditioning store
// migrations.
type Repo struct {
	db    *pgxpool.Pool
	newID func() string
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:    db,
		newID: uuid.NewString,
	}
}

func (r *Repo) Add(ctx context.Context, note Note) (_ *Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", note.PlayerID))

	if note.Text == "" || note.Date.IsZero() {
		return nil, errors.New("note text or timestamp empty")
	}

	note.ID = r.newID()
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO note (id, player_id, author_id, text, noted_at, is_public)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		note.ID, note.PlayerID, note.AuthorID, note.Text, note.Date, note.IsPublic,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, conditioning.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return &note, nil
}

func (r *Repo) Get(ctx context.Context, playerID, id string) (_ *Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var n Note
	err = r.db.QueryRow(
		ctx,
		`SELECT id, player_id, author_id, text, noted_at, is_public
			FROM note
			WHERE id = $1 AND player_id = $2;`,
		id, playerID,
	).Scan(&n.ID, &n.PlayerID, &n.AuthorID, &n.Text, &n.Date, &n.IsPublic)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	n.Date = n.Date.UTC()
	return &n, nil
}

func (r *Repo) Update(ctx context.Context, note Note) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", note.ID))

	if note.Text == "" {
		return errors.New("note text empty")
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE note SET text = $1, is_public = $2 WHERE id = $3 AND player_id = $4;`,
		note.Text, note.IsPublic, note.ID, note.PlayerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, playerID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM note WHERE id = $1 AND player_id = $2;`,
		id, playerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context, playerID string) (_ []Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", playerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, player_id, author_id, text, noted_at, is_public
			FROM note
			WHERE player_id = $1
			ORDER BY noted_at DESC, id;`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("notes [query]: %w", err)
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.PlayerID, &n.AuthorID, &n.Text, &n.Date, &n.IsPublic); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		n.Date = n.Date.UTC()
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("notes.count", len(notes)))
	return notes, nil
}
