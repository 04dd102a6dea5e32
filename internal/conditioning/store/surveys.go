package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/telemetry/tracing"
	"github.com/2beens/kondisca/pkg"

	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) ListDailySurveys(ctx context.Context, playerID string) (_ []conditioning.DailySurvey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.list")
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
	return r.listDailySurveys(ctx, playerID)
}

func (r *Repo) listDailySurveys(ctx context.Context, playerID string) ([]conditioning.DailySurvey, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT player_id, survey_date, answers
			FROM daily_survey
			WHERE ($1::text = '' OR player_id = $1)
			ORDER BY survey_date;`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("daily surveys [query]: %w", err)
	}
	defer rows.Close()

	var surveys []conditioning.DailySurvey
	for rows.Next() {
		var ds conditioning.DailySurvey
		var answersJson []byte
		if err := rows.Scan(&ds.PlayerID, &ds.Date, &answersJson); err != nil {
			return nil, fmt.Errorf("scan daily survey: %w", err)
		}
		if err := json.Unmarshal(answersJson, &ds.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal survey answers: %w", err)
		}
		ds.Date = conditioning.CalendarDate(ds.Date, time.UTC)
		surveys = append(surveys, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *Repo) UpsertDailySurvey(ctx context.Context, survey conditioning.DailySurvey) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("player.id", survey.PlayerID))

	answersJson, err := json.Marshal(survey.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO daily_survey (player_id, survey_date, answers) VALUES ($1, $2, $3)
			ON CONFLICT (player_id, survey_date) DO UPDATE SET answers = EXCLUDED.answers;`,
		survey.PlayerID, conditioning.CalendarDate(survey.Date, time.UTC), answersJson,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return conditioning.ErrPlayerNotFound
	}
	return err
}

func (r *Repo) CountSurveysOn(ctx context.Context, day time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.surveys.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM daily_survey WHERE survey_date = $1;`,
		conditioning.CalendarDate(day, time.UTC),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count surveys: %w", err)
	}
	return count, nil
}

func (r *Repo) ListSurveyQuestions(ctx context.Context) (_ []conditioning.SurveyQuestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.survey_questions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, label, key, type, is_active FROM survey_question ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("survey questions [query]: %w", err)
	}
	defer rows.Close()

	questions := make([]conditioning.SurveyQuestion, 0)
	for rows.Next() {
		var q conditioning.SurveyQuestion
		var qType string
		if err := rows.Scan(&q.ID, &q.Label, &q.Key, &qType, &q.IsActive); err != nil {
			return nil, fmt.Errorf("scan survey question: %w", err)
		}
		q.Type = conditioning.QuestionType(qType)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *Repo) AddSurveyQuestion(ctx context.Context, question conditioning.SurveyQuestion) (_ *conditioning.SurveyQuestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.survey_questions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	question.ID = r.newID()
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO survey_question (id, label, key, type, is_active) VALUES ($1, $2, $3, $4, $5);`,
		question.ID, question.Label, question.Key, string(question.Type), question.IsActive,
	)
	if pkg.IsUniqueViolationError(err) {
		return nil, conditioning.ErrQuestionKeyTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert survey question: %w", err)
	}
	return &question, nil
}

func (r *Repo) UpdateSurveyQuestion(ctx context.Context, question conditioning.SurveyQuestion) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.survey_questions.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", question.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE survey_question SET label = $1, key = $2, type = $3, is_active = $4 WHERE id = $5;`,
		question.Label, question.Key, string(question.Type), question.IsActive, question.ID,
	)
	if pkg.IsUniqueViolationError(err) {
		return conditioning.ErrQuestionKeyTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrQuestionNotFound
	}
	return nil
}

func (r *Repo) DeleteSurveyQuestion(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.survey_questions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM survey_question WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return conditioning.ErrQuestionNotFound
	}
	return nil
}
