package store

import (
	"context"
	"fmt"

	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/telemetry/tracing"
	"github.com/2beens/kondisca/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) ListMeasurements(ctx context.Context, playerID string) (_ []conditioning.Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
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
	return r.listMeasurements(ctx, playerID)
}

// listMeasurements returns measurements in the order they were entered;
// an empty playerID lists everyone's.
func (r *Repo) listMeasurements(ctx context.Context, playerID string) ([]conditioning.Measurement, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, player_id, metric_id, value, measured_at
			FROM measurement
			WHERE ($1::text = '' OR player_id = $1)
			ORDER BY seq;`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("measurements [query]: %w", err)
	}
	defer rows.Close()

	var measurements []conditioning.Measurement
	for rows.Next() {
		var ms conditioning.Measurement
		if err := rows.Scan(&ms.ID, &ms.PlayerID, &ms.MetricID, &ms.Value, &ms.Date); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		ms.Date = ms.Date.UTC()
		measurements = append(measurements, ms)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return measurements, nil
}

// AddMeasurements inserts all measurements in one transaction: either all
// of them are stored or none.
func (r *Repo) AddMeasurements(ctx context.Context, playerID string, measurements []conditioning.Measurement) (_ []conditioning.Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", playerID))
	span.SetAttributes(attribute.Int("measurements.count", len(measurements)))

	exists, err := r.playerExists(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, conditioning.ErrPlayerNotFound
	}
	if len(measurements) == 0 {
		return []conditioning.Measurement{}, nil
	}

	added := make([]conditioning.Measurement, 0, len(measurements))
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, ms := range measurements {
			ms.ID = r.newID()
			ms.PlayerID = playerID
			batch.Queue(
				`INSERT INTO measurement (id, player_id, metric_id, value, measured_at) VALUES ($1, $2, $3, $4, $5);`,
				ms.ID, ms.PlayerID, ms.MetricID, ms.Value, ms.Date,
			)
			added = append(added, ms)
		}
		return tx.SendBatch(ctx, batch).Close()
	})

	// the player was checked above, so a broken reference is a metric
	if pkg.IsForeignKeyViolationError(err) {
		return nil, conditioning.ErrMetricNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("insert measurements: %w", err)
	}

	return added, nil
}

func (r *Repo) UpdateMeasurement(ctx context.Context, measurement conditioning.Measurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", measurement.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE measurement SET value = $1, measured_at = $2 WHERE id = $3 AND player_id = $4;`,
		measurement.Value, measurement.Date, measurement.ID, measurement.PlayerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrMeasurementNotFound
	}
	return nil
}

func (r *Repo) DeleteMeasurement(ctx context.Context, playerID, measurementID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", measurementID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM measurement WHERE id = $1 AND player_id = $2;`,
		measurementID, playerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrMeasurementNotFound
	}
	return nil
}
