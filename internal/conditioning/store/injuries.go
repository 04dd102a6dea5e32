package store

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/telemetry/tracing"
	"github.com/2beens/kondisca/pkg"

	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) ListInjuries(ctx context.Context, playerID string) (_ []conditioning.Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", playerID))

	exists, err := r.playerExists(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, conditioning.ErrPlayerNotFound
	}
	return r.listInjuries(ctx, playerID)
}

// listInjuries returns injuries newest first.
func (r *Repo) listInjuries(ctx context.Context, playerID string) ([]conditioning.Injury, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, player_id, description, estimated_recovery, injured_at, recovered_at
			FROM injury
			WHERE ($1::text = '' OR player_id = $1)
			ORDER BY injured_at DESC;`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("injuries [query]: %w", err)
	}
	defer rows.Close()

	var injuries []conditioning.Injury
	for rows.Next() {
		var inj conditioning.Injury
		err := rows.Scan(
			&inj.ID,
			&inj.PlayerID,
			&inj.Description,
			&inj.EstimatedRecovery,
			&inj.Date,
			&inj.RecoveryDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan injury: %w", err)
		}
		inj.Date = inj.Date.UTC()
		injuries = append(injuries, inj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return injuries, nil
}

func (r *Repo) AddInjury(ctx context.Context, injury conditioning.Injury) (_ *conditioning.Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", injury.PlayerID))

	injury.ID = r.newID()
	injury.RecoveryDate = nil
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO injury (id, player_id, description, estimated_recovery, injured_at)
			VALUES ($1, $2, $3, $4, $5);`,
		injury.ID, injury.PlayerID, injury.Description, injury.EstimatedRecovery, injury.Date,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, conditioning.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("insert injury: %w", err)
	}
	return &injury, nil
}

func (r *Repo) MarkRecovered(ctx context.Context, playerID, injuryID string, recoveredAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.recovered")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", injuryID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE injury SET recovered_at = $1 WHERE id = $2 AND player_id = $3;`,
		recoveredAt, injuryID, playerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrInjuryNotFound
	}
	return nil
}
