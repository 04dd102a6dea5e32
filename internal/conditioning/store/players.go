package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const playerColumns = `id, name, position, avatar_url, email, phone, birth_date`

// ListPlayers loads all players with their records. Records are fetched
// with one query per table, not per player.
func (r *Repo) ListPlayers(ctx context.Context) (_ []conditioning.Player, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.players.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+playerColumns+` FROM player ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("players [query]: %w", err)
	}
	players, err := collectPlayers(rows)
	if err != nil {
		return nil, err
	}

	measurements, err := r.listMeasurements(ctx, "")
	if err != nil {
		return nil, err
	}
	surveys, err := r.listDailySurveys(ctx, "")
	if err != nil {
		return nil, err
	}
	injuries, err := r.listInjuries(ctx, "")
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[string]*conditioning.Player, len(players))
	for i := range players {
		byPlayer[players[i].ID] = &players[i]
	}
	for _, ms := range measurements {
		if p, ok := byPlayer[ms.PlayerID]; ok {
			p.Measurements = append(p.Measurements, ms)
		}
	}
	for _, ds := range surveys {
		if p, ok := byPlayer[ds.PlayerID]; ok {
			p.DailySurveys = append(p.DailySurveys, ds)
		}
	}
	for _, inj := range injuries {
		if p, ok := byPlayer[inj.PlayerID]; ok {
			p.InjuryHistory = append(p.InjuryHistory, inj)
		}
	}
	for i := range players {
		players[i].Injury = conditioning.CurrentInjury(players[i].InjuryHistory)
	}

	span.SetAttributes(attribute.Int("players.count", len(players)))
	return players, nil
}

func (r *Repo) GetPlayer(ctx context.Context, id string) (_ *conditioning.Player, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.players.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	p, err := scanPlayer(r.db.QueryRow(
		ctx,
		`SELECT `+playerColumns+` FROM player WHERE id = $1;`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, conditioning.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Measurements, err = r.listMeasurements(ctx, id); err != nil {
		return nil, err
	}
	if p.DailySurveys, err = r.listDailySurveys(ctx, id); err != nil {
		return nil, err
	}
	if p.InjuryHistory, err = r.listInjuries(ctx, id); err != nil {
		return nil, err
	}
	p.Injury = conditioning.CurrentInjury(p.InjuryHistory)

	return &p, nil
}

func (r *Repo) AddPlayer(ctx context.Context, player conditioning.Player) (_ *conditioning.Player, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.players.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	player.ID = r.newID()
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO player (`+playerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		player.ID, player.Name, player.Position, player.AvatarURL, player.Email, player.Phone, player.BirthDate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}

	span.SetAttributes(attribute.String("player.id", player.ID))
	player.Measurements = nil
	player.DailySurveys = nil
	player.InjuryHistory = nil
	player.Injury = nil
	return &player, nil
}

func (r *Repo) UpdatePlayer(ctx context.Context, player conditioning.Player) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.players.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", player.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE player SET name = $1, position = $2, avatar_url = $3, email = $4, phone = $5, birth_date = $6
		WHERE id = $7;`,
		player.Name, player.Position, player.AvatarURL, player.Email, player.Phone, player.BirthDate, player.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrPlayerNotFound
	}
	return nil
}

func (r *Repo) DeletePlayer(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.players.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM player WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrPlayerNotFound
	}
	return nil
}

func (r *Repo) playerExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM player WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("player exists: %w", err)
	}
	return exists, nil
}

func collectPlayers(rows pgx.Rows) ([]conditioning.Player, error) {
	defer rows.Close()
	players := make([]conditioning.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func scanPlayer(row pgx.Row) (conditioning.Player, error) {
	var p conditioning.Player
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Position,
		&p.AvatarURL,
		&p.Email,
		&p.Phone,
		&p.BirthDate,
	)
	if err != nil {
		return conditioning.Player{}, fmt.Errorf("scan player: %w", err)
	}
	return p, nil
}
