package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/kondisca/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const eventColumns = `id, event_date, event_time, title, description, is_team_event, player_ids`

// Repo keeps events in the schedule_event table, created by the
// conditioning store migrations.
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

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := event.Normalize(); err != nil {
		return nil, err
	}
	date, err := time.Parse(DateLayout, event.Date)
	if err != nil {
		return nil, err
	}

	event.ID = r.newID()
	span.SetAttributes(attribute.String("id", event.ID), attribute.String("date", event.Date))
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO schedule_event (`+eventColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		event.ID, date, event.Time, event.Title, event.Description, event.IsTeamEvent, event.PlayerIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("insert schedule event: %w", err)
	}
	return &event, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	e, err := scanEvent(r.db.QueryRow(
		ctx,
		`SELECT `+eventColumns+` FROM schedule_event WHERE id = $1;`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) Update(ctx context.Context, event Event) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", event.ID))

	if err := event.Normalize(); err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, event.Date)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE schedule_event
			SET event_date = $1, event_time = $2, title = $3, description = $4, is_team_event = $5, player_ids = $6
			WHERE id = $7;`,
		date, event.Time, event.Title, event.Description, event.IsTeamEvent, event.PlayerIDs, event.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM schedule_event WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context, rng Range) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", rng.From), attribute.String("to", rng.To))

	from, err := boundDate(rng.From)
	if err != nil {
		return nil, err
	}
	to, err := boundDate(rng.To)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+eventColumns+`
			FROM schedule_event
			WHERE ($1::date IS NULL OR event_date >= $1::date)
				AND ($2::date IS NULL OR event_date <= $2::date)
			ORDER BY event_date, event_time, seq;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("schedule events [query]: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("events.count", len(events)))
	return events, nil
}

func boundDate(date string) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanEvent(row pgx.Row) (Event, error) {
	var (
		e    Event
		date time.Time
	)
	err := row.Scan(&e.ID, &date, &e.Time, &e.Title, &e.Description, &e.IsTeamEvent, &e.PlayerIDs)
	if err != nil {
		return Event{}, err
	}
	e.Date = date.Format(DateLayout)
	if e.PlayerIDs == nil {
		e.PlayerIDs = []string{}
	}
	return e, nil
}
