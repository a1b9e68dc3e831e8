//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gymsplit/internal/gymsplit/catalog"
	"github.com/2beens/gymsplit/internal/gymsplit/plans"
	"github.com/2beens/gymsplit/internal/gymsplit/share"
	"github.com/2beens/gymsplit/internal/gymsplit/volume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, bodyReader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestExercisesList() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	status, body := s.doRequest(ctx, http.MethodGet, "/exercises", nil)
	require.Equal(t, http.StatusOK, status)
	var all []catalog.Exercise
	require.NoError(t, json.Unmarshal(body, &all))
	assert.Len(t, all, len(testExercises))

	status, body = s.doRequest(ctx, http.MethodGet, "/exercises?muscle=chest&q=bench", nil)
	require.Equal(t, http.StatusOK, status)
	var filtered []catalog.Exercise
	require.NoError(t, json.Unmarshal(body, &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Barbell Bench Press", filtered[0].Name)

	status, body = s.doRequest(ctx, http.MethodGet, "/exercises/facets", nil)
	require.Equal(t, http.StatusOK, status)
	var facets catalog.Facets
	require.NoError(t, json.Unmarshal(body, &facets))
	assert.Equal(t, []string{"chest", "lats", "quadriceps"}, facets.Muscles)
}

func (s *IntegrationTestSuite) TestPlanLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	benchID := s.exerciseIDs["Barbell_Bench_Press"]
	flyesID := s.exerciseIDs["Dumbbell_Flyes"]
	squatID := s.exerciseIDs["Barbell_Squat"]

	newPlan := map[string]any{
		"name": "Chest Focus",
		"days": []map[string]any{
			{"name": "Monday", "exercises": []map[string]any{
				{"id": benchID, "sets": 3, "reps": 8, "rir": 2},
			}},
			{"name": "Wednesday", "exercises": []map[string]any{
				{"id": flyesID, "sets": 3, "reps": 12, "rir": 1},
			}},
			{"name": "Friday", "exercises": []map[string]any{
				{"id": benchID, "sets": 2, "reps": 5, "rir": 1},
			}},
		},
	}

	status, body := s.doRequest(ctx, http.MethodPost, "/plans", newPlan)
	require.Equal(t, http.StatusCreated, status, string(body))
	var created plans.CreatePlanResponse
	require.NoError(t, json.Unmarshal(body, &created))
	require.Positive(t, created.ID)
	planPath := fmt.Sprintf("/plans/%d", created.ID)

	status, body = s.doRequest(ctx, http.MethodGet, planPath, nil)
	require.Equal(t, http.StatusOK, status)
	var plan plans.Plan
	require.NoError(t, json.Unmarshal(body, &plan))
	assert.Equal(t, "Chest Focus", plan.Name)
	require.Len(t, plan.Days, 3)
	assert.Equal(t, "Dumbbell Flyes", plan.Days[1].Exercises[0].Name)

	// 8 chest sets over 3 assignments
	status, body = s.doRequest(ctx, http.MethodGet, planPath+"/volume", nil)
	require.Equal(t, http.StatusOK, status)
	var report volume.Report
	require.NoError(t, json.Unmarshal(body, &report))
	chest := report.Muscles["chest"]
	assert.Equal(t, 8, chest.TotalSets)
	assert.Equal(t, 3, chest.Frequency)
	assert.Equal(t, volume.VolumeAdequate, chest.VolumeStatus)
	assert.Equal(t, volume.FrequencyOptimal, chest.FrequencyStatus)
	assert.Equal(t, 3, report.ActiveDays)
	assert.Len(t, report.HardSets, 2)

	// add squat on a day not yet in the plan, catalog defaults apply
	status, body = s.doRequest(ctx, http.MethodPost, planPath+"/days/tuesday/exercises", plans.AddExerciseRequest{ExerciseID: squatID})
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &plan))
	require.Len(t, plan.Days, 4)
	assert.Equal(t, "Tuesday", plan.Days[1].Name)
	require.Len(t, plan.Days[1].Exercises, 1)
	assert.Equal(t, 4, plan.Days[1].Exercises[0].Sets)
	assert.Equal(t, 8, plan.Days[1].Exercises[0].Reps)

	status, body = s.doRequest(ctx, http.MethodPatch, planPath+"/days/Tuesday/exercises/0", map[string]int{"sets": 5})
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &plan))
	assert.Equal(t, 5, plan.Days[1].Exercises[0].Sets)

	status, body = s.doRequest(ctx, http.MethodDelete, planPath+"/days/Monday/exercises/0", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &plan))
	assert.Empty(t, plan.Days[0].Exercises)

	// replace discards everything
	status, body = s.doRequest(ctx, http.MethodPut, planPath, map[string]any{
		"name": "Rest Week",
		"days": []map[string]any{},
	})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.JSONEq(t, `{"success": true}`, string(body))

	status, body = s.doRequest(ctx, http.MethodGet, planPath, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &plan))
	assert.Equal(t, "Rest Week", plan.Name)
	assert.Empty(t, plan.Days)
}

func (s *IntegrationTestSuite) TestPlanErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	status, _ := s.doRequest(ctx, http.MethodGet, "/plans/987654", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.doRequest(ctx, http.MethodPut, "/plans/987654", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.doRequest(ctx, http.MethodPost, "/plans/987654/public", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := s.doRequest(ctx, http.MethodPost, "/plans", map[string]any{
		"name": "bad sets",
		"days": []map[string]any{
			{"name": "Monday", "exercises": []map[string]any{
				{"id": s.exerciseIDs["Pullups"], "sets": 0, "reps": 8, "rir": 2},
			}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "sets")

	status, _ = s.doRequest(ctx, http.MethodPost, "/plans", map[string]any{
		"name": "unknown exercise",
		"days": []map[string]any{
			{"name": "Monday", "exercises": []map[string]any{
				{"id": 987654, "sets": 3, "reps": 8, "rir": 2},
			}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.doRequest(ctx, http.MethodGet, "/public/doesnotexist", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestShareRoundTrip() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	status, body := s.doRequest(ctx, http.MethodPost, "/plans", map[string]any{
		"name": "Shared Split",
		"days": []map[string]any{
			{"name": "Saturday", "exercises": []map[string]any{
				{"id": s.exerciseIDs["Pullups"], "sets": 4, "reps": 6, "rir": 0},
			}},
		},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var created plans.CreatePlanResponse
	require.NoError(t, json.Unmarshal(body, &created))

	status, body = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/plans/%d/public", created.ID), nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var published share.PublishResponse
	require.NoError(t, json.Unmarshal(body, &published))
	require.Len(t, published.Slug, share.SlugLength)

	// second resolve is served from the redis cache, result must not differ
	for i := 0; i < 2; i++ {
		status, body = s.doRequest(ctx, http.MethodGet, "/public/"+published.Slug, nil)
		require.Equal(t, http.StatusOK, status)
		var plan plans.Plan
		require.NoError(t, json.Unmarshal(body, &plan))
		assert.Equal(t, created.ID, plan.ID)
		assert.Equal(t, "Shared Split", plan.Name)
		require.Len(t, plan.Days, 1)
		assert.Equal(t, "Pullups", plan.Days[0].Exercises[0].Name)
	}

	status, body = s.doRequest(ctx, http.MethodGet, "/public/"+published.Slug+"/volume", nil)
	require.Equal(t, http.StatusOK, status)
	var report volume.Report
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, 4, report.Muscles["lats"].TotalSets)
	assert.Equal(t, volume.FrequencyInsufficient, report.Muscles["lats"].FrequencyStatus)
}

func (s *IntegrationTestSuite) TestAnalyzeUnsavedPlan() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	status, body := s.doRequest(ctx, http.MethodPost, "/volume", map[string]any{
		"days": []map[string]any{
			{"name": "Monday", "exercises": []map[string]any{
				{"id": s.exerciseIDs["Barbell_Squat"], "sets": 2, "reps": 5, "rir": 3},
			}},
		},
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var report volume.Report
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, 2, report.TotalSets)
	assert.Equal(t, volume.VolumeLow, report.Muscles["quadriceps"].VolumeStatus)
	assert.Empty(t, report.HardSets)
}
