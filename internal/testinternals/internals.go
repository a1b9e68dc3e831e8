// Package testinternals holds fixtures shared by the repo tests that run
// against a live Postgres (integration_test build tag).
package testinternals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/2beens/gymsplit/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type TestExercise struct {
	ExerciseID       string
	Name             string
	PrimaryMuscle    string
	SecondaryMuscles []string
	Equipment        string
	Category         string
}

var DefaultExercises = []TestExercise{
	{ExerciseID: "Barbell_Bench_Press", Name: "Barbell Bench Press", PrimaryMuscle: "chest", SecondaryMuscles: []string{"triceps", "shoulders"}, Equipment: "barbell", Category: "strength"},
	{ExerciseID: "Barbell_Squat", Name: "Barbell Squat", PrimaryMuscle: "quadriceps", SecondaryMuscles: []string{"glutes"}, Equipment: "barbell", Category: "strength"},
	{ExerciseID: "Pullups", Name: "Pullups", PrimaryMuscle: "lats", SecondaryMuscles: []string{"biceps"}, Equipment: "body only", Category: "strength"},
}

// NewTestDBPool connects to POSTGRES_HOST (localhost by default), applies the
// schema and empties all tables.
func NewTestDBPool(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "gymsplit_test",
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		TracingEnabled: false,
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(timeoutCtx, dbPool))
	_, err = dbPool.Exec(timeoutCtx,
		`TRUNCATE public_shares, day_exercises, days, plans, exercises RESTART IDENTITY CASCADE;`,
	)
	require.NoError(t, err)

	return dbPool, func() {
		dbPool.Close()
	}
}

// SeedExercises inserts the given catalog rows and returns their ids in the same order.
func SeedExercises(t *testing.T, dbPool *pgxpool.Pool, exercises []TestExercise) []int {
	t.Helper()

	ids := make([]int, 0, len(exercises))
	for _, e := range exercises {
		var id int
		err := dbPool.QueryRow(context.Background(),
			`INSERT INTO exercises (exercise_id, name, primary_muscle, secondary_muscles, equipment, category)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
			e.ExerciseID, e.Name, e.PrimaryMuscle, e.SecondaryMuscles, e.Equipment, e.Category,
		).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}
