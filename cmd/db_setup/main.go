package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/gymsplit/internal/config"
	"github.com/2beens/gymsplit/internal/db"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	exercisesPath := flag.String("exercises", "", "path to a free-exercise-db style exercises.json (schema only if empty)")
	sslMode := flag.String("sslmode", "disable", "postgres sslmode")
	flag.Parse()

	log.SetLevel(log.DebugLevel)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	dsn := db.ConnString(db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("GYMSPLIT_PG_PASS"),
	}) + "?sslmode=" + *sslMode

	log.Debugf("db config: host=%s port=%s db=%s user=%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName, cfg.PostgresUser)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, dsn, *exercisesPath); err != nil {
		log.Fatalf("database setup failed: %s", err)
	}
}

func run(ctx context.Context, dsn, exercisesPath string) error {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db conn: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Errorf("close db: %s", err)
		}
	}()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	log.Println("setting up database ...")
	if _, err := sqlDB.ExecContext(ctx, db.Schema()); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Println("schema created")

	if exercisesPath != "" {
		f, err := os.Open(exercisesPath)
		if err != nil {
			return fmt.Errorf("open exercises file: %w", err)
		}
		defer f.Close()

		exercises, err := parseExercises(f)
		if err != nil {
			return err
		}

		imported, err := importExercises(ctx, sqlDB, exercises)
		if err != nil {
			return err
		}
		log.Printf("imported %d exercises", imported)
	}

	var count int
	if err := sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises;`).Scan(&count); err != nil {
		return fmt.Errorf("count exercises: %w", err)
	}
	log.Printf("database ready with %d exercises", count)

	return nil
}
