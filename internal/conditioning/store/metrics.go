package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/telemetry/tracing"
	"github.com/2beens/kondisca/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const metricColumns = `id, name, unit, input_type, formula, survey_question_key, is_active, show_in_radar, exclude_from_leaderboard`

func (r *Repo) ListMetrics(ctx context.Context) (_ []conditioning.MetricDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+metricColumns+` FROM metric_definition ORDER BY seq;`,
	)
	if err != nil {
		return nil, fmt.Errorf("metrics [query]: %w", err)
	}
	defer rows.Close()

	metrics := make([]conditioning.MetricDefinition, 0)
	for rows.Next() {
		m, err := scanMetric(rows)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("metrics.count", len(metrics)))
	return metrics, nil
}

func (r *Repo) GetMetric(ctx context.Context, id string) (_ *conditioning.MetricDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	m, err := scanMetric(r.db.QueryRow(
		ctx,
		`SELECT `+metricColumns+` FROM metric_definition WHERE id = $1;`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, conditioning.ErrMetricNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) AddMetric(ctx context.Context, metric conditioning.MetricDefinition) (_ *conditioning.MetricDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metric.ID = r.newID()
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO metric_definition (`+metricColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		metric.ID, metric.Name, metric.Unit, string(metric.InputType), metric.Formula,
		metric.SurveyQuestionKey, metric.IsActive, metric.ShowInRadar, metric.ExcludeFromLeaderboard,
	)
	if pkg.IsUniqueViolationError(err) {
		return nil, conditioning.ErrMetricNameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert metric: %w", err)
	}

	span.SetAttributes(attribute.String("metric.id", metric.ID))
	return &metric, nil
}

func (r *Repo) UpdateMetric(ctx context.Context, metric conditioning.MetricDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", metric.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE metric_definition SET
			name = $1, unit = $2, input_type = $3, formula = $4, survey_question_key = $5,
			is_active = $6, show_in_radar = $7, exclude_from_leaderboard = $8
		WHERE id = $9;`,
		metric.Name, metric.Unit, string(metric.InputType), metric.Formula, metric.SurveyQuestionKey,
		metric.IsActive, metric.ShowInRadar, metric.ExcludeFromLeaderboard, metric.ID,
	)
	if pkg.IsUniqueViolationError(err) {
		return conditioning.ErrMetricNameTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrMetricNotFound
	}
	return nil
}

func (r *Repo) DeleteMetric(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM metric_definition WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrMetricNotFound
	}
	return nil
}

func scanMetric(row pgx.Row) (conditioning.MetricDefinition, error) {
	var m conditioning.MetricDefinition
	var inputType string
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Unit,
		&inputType,
		&m.Formula,
		&m.SurveyQuestionKey,
		&m.IsActive,
		&m.ShowInRadar,
		&m.ExcludeFromLeaderboard,
	)
	if err != nil {
		return conditioning.MetricDefinition{}, fmt.Errorf("scan metric: %w", err)
	}
	m.InputType = conditioning.InputType(inputType)
	return m, nil
}
