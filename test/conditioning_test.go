//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/kondisca/internal/auth"
	"github.com/2beens/kondisca/internal/conditioning"
	"github.com/2beens/kondisca/internal/dashboard"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestAuth() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	resp, err := s.get(ctx, "/players", "")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = s.get(ctx, "/players", "not-a-session")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	playerToken := s.openSession(ctx, auth.RolePlayer, "someone")
	resp, err = s.get(ctx, "/players", playerToken)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	closed, err := auth.NewService(auth.DefaultTTL, s.redisClient).Close(ctx, playerToken)
	require.NoError(t, err)
	assert.True(t, closed)
	resp, err = s.get(ctx, "/metrics/definitions", playerToken)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestConditioningFlow() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	coach := s.openSession(ctx, auth.RoleConditioner, "coach-1")

	addMetric := func(m conditioning.MetricDefinition) conditioning.MetricDefinition {
		var resp dashboard.MetricResponse
		s.call(ctx, "POST", "/metrics/definitions", coach, m, http.StatusCreated, &resp)
		return resp.Metric
	}
	height := addMetric(conditioning.MetricDefinition{
		Name: "Height", Unit: "cm", InputType: conditioning.InputManual, IsActive: true, ExcludeFromLeaderboard: true,
	})
	weight := addMetric(conditioning.MetricDefinition{
		Name: "Weight", Unit: "kg", InputType: conditioning.InputManual, IsActive: true, ShowInRadar: true,
	})
	bmi := addMetric(conditioning.MetricDefinition{
		Name:        "BMI",
		InputType:   conditioning.InputCalculated,
		Formula:     "[Weight] / (([Height] / 100) * ([Height] / 100))",
		IsActive:    true,
		ShowInRadar: true,
	})
	addMetric(conditioning.MetricDefinition{
		Name: "Sleep Quality", InputType: conditioning.InputSurvey, SurveyQuestionKey: "sleep", IsActive: true, ShowInRadar: true,
	})
	s.call(ctx, "POST", "/metrics/definitions", coach,
		conditioning.MetricDefinition{Name: "Weight", InputType: conditioning.InputManual},
		http.StatusConflict, nil)

	s.call(ctx, "POST", "/survey/questions", coach, conditioning.SurveyQuestion{
		Label: "How did you sleep?", Key: "sleep", Type: conditioning.QuestionRange, IsActive: true,
	}, http.StatusCreated, nil)

	var luka, bogdan conditioning.Player
	s.call(ctx, "POST", "/players", coach, conditioning.Player{Name: "Luka", Position: "PG"}, http.StatusCreated, &luka)
	s.call(ctx, "POST", "/players", coach, conditioning.Player{Name: gofakeit.Name(), Position: "SG"}, http.StatusCreated, &bogdan)
	require.NotEmpty(t, luka.ID)

	may := func(d int) time.Time {
		return time.Date(2024, 5, d, 8, 0, 0, 0, time.UTC)
	}
	s.call(ctx, "POST", "/players/"+luka.ID+"/measurements", coach, dashboard.AddMeasurementsRequest{
		Measurements: []conditioning.Measurement{
			{MetricID: height.ID, Value: 180, Date: may(1)},
			{MetricID: weight.ID, Value: 80, Date: may(1)},
			{MetricID: weight.ID, Value: 86, Date: may(10)},
		},
	}, http.StatusCreated, nil)
	s.call(ctx, "POST", "/players/"+bogdan.ID+"/measurements", coach, dashboard.AddMeasurementsRequest{
		Measurements: []conditioning.Measurement{
			{MetricID: weight.ID, Value: 90, Date: may(2)},
			{MetricID: weight.ID, Value: 85, Date: may(9)},
		},
	}, http.StatusCreated, nil)

	player := s.openSession(ctx, auth.RolePlayer, luka.ID)

	var status dashboard.SurveyStatusResponse
	s.call(ctx, "GET", "/players/"+luka.ID+"/surveys/today", player, nil, http.StatusOK, &status)
	assert.False(t, status.Completed)

	s.call(ctx, "POST", "/players/"+luka.ID+"/surveys", player, dashboard.SubmitSurveyRequest{
		Answers: map[string]conditioning.Value{"sleep": conditioning.NumberValue(7)},
	}, http.StatusCreated, nil)
	s.call(ctx, "GET", "/players/"+luka.ID+"/surveys/today", player, nil, http.StatusOK, &status)
	assert.True(t, status.Completed)

	// players only see their own records
	s.call(ctx, "GET", "/players/"+bogdan.ID, player, nil, http.StatusForbidden, nil)

	var composites dashboard.CompositesResponse
	s.call(ctx, "GET", "/players/"+luka.ID+"/composites", player, nil, http.StatusOK, &composites)
	require.Len(t, composites.Points, 3)
	firstBMI, ok := composites.Points[0].Number(bmi.ID)
	require.True(t, ok)
	assert.Equal(t, 24.69, firstBMI)

	var radar []conditioning.RadarPoint
	s.call(ctx, "GET", "/players/"+luka.ID+"/radar", player, nil, http.StatusOK, &radar)
	require.Len(t, radar, 3)
	for _, p := range radar {
		switch p.MetricID {
		case weight.ID:
			assert.Equal(t, 86.0, p.Value)
		case bmi.ID:
			assert.Equal(t, 26.54, p.Value)
		default:
			assert.Equal(t, 7.0, p.Value)
		}
	}

	var board []conditioning.LeaderboardEntry
	s.call(ctx, "GET", "/leaderboard?metric="+weight.ID+"&change=percent&order=desc", player, nil, http.StatusOK, &board)
	require.Len(t, board, 2)
	assert.Equal(t, luka.ID, board[0].Player.ID)
	assert.Equal(t, conditioning.Percent(7.5), board[0].ImprovementPercent)
	s.call(ctx, "GET", "/leaderboard?metric="+height.ID, player, nil, http.StatusBadRequest, nil)

	var summary conditioning.DashboardSummary
	s.call(ctx, "GET", "/dashboard/summary", coach, nil, http.StatusOK, &summary)
	assert.Equal(t, conditioning.DashboardSummary{TotalPlayers: 2, SurveysToday: 1}, summary)

	// survey submissions are limited per player
	for range 2 {
		s.call(ctx, "POST", "/players/"+luka.ID+"/surveys", player, dashboard.SubmitSurveyRequest{
			Answers: map[string]conditioning.Value{"sleep": conditioning.NumberValue(6)},
		}, http.StatusCreated, nil)
	}
	s.call(ctx, "POST", "/players/"+luka.ID+"/surveys", player, dashboard.SubmitSurveyRequest{
		Answers: map[string]conditioning.Value{"sleep": conditioning.NumberValue(6)},
	}, http.StatusTooManyRequests, nil)
}
