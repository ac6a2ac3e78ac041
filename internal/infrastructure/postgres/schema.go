package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Sentencias idempotentes: se ejecutan en cada arranque.
// El constraint único sobre (attraction_id, date) respalda la clave natural
// del upsert; sin él, dos upserts concurrentes podrían duplicar el par.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS attractions (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS daily_data (
		id                TEXT PRIMARY KEY,
		attraction_id     TEXT NOT NULL REFERENCES attractions (id),
		date              DATE NOT NULL,
		qrcodes_delivered BIGINT NOT NULL DEFAULT 0 CHECK (qrcodes_delivered >= 0),
		sales_made        BIGINT NOT NULL DEFAULT 0 CHECK (sales_made >= 0),
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (attraction_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_data_date ON daily_data (date)`,
}

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedAdmin siembra la credencial de administrador si aún no existe.
// Con password vacío no siembra nada (instalaciones que ya tienen usuarios).
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING`,
		uuid.New().String(), username, string(hash), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
