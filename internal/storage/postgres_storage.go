package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
)

var _ ports.Storage = (*PostgresStorage)(nil)

type PostgresStorage struct {
	Pool *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, connStr string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	s := &PostgresStorage{Pool: pool}
	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *PostgresStorage) initSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS credentials (name TEXT PRIMARY KEY, value TEXT)`,
		`CREATE TABLE IF NOT EXISTS drafts (target_key TEXT PRIMARY KEY, content TEXT, updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`,
	}

	for _, q := range queries {
		if _, err := s.Pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to init schema: %v", err)
		}
	}
	return nil
}

func (s *PostgresStorage) setCredential(name, value string) error {
	_, err := s.Pool.Exec(context.Background(),
		"INSERT INTO credentials (name, value) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET value = $2",
		name, value)
	return err
}

func (s *PostgresStorage) getCredential(name string) (string, error) {
	var value string
	err := s.Pool.QueryRow(context.Background(), "SELECT value FROM credentials WHERE name = $1", name).Scan(&value)
	if err != nil {
		return "", nil
	}
	return value, nil
}

func (s *PostgresStorage) SaveToken(token string) error {
	return s.setCredential("token", token)
}

func (s *PostgresStorage) LoadToken() (string, error) {
	return s.getCredential("token")
}

func (s *PostgresStorage) SaveNickname(nickname string) error {
	return s.setCredential("nickname", nickname)
}

func (s *PostgresStorage) LoadNickname() (string, error) {
	return s.getCredential("nickname")
}

func (s *PostgresStorage) SaveDraft(targetKey string, content string) error {
	_, err := s.Pool.Exec(context.Background(),
		`INSERT INTO drafts (target_key, content, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		 ON CONFLICT (target_key) DO UPDATE SET content = $2, updated_at = CURRENT_TIMESTAMP`,
		targetKey, content)
	return err
}

func (s *PostgresStorage) LoadDraft(targetKey string) (string, error) {
	var content string
	err := s.Pool.QueryRow(context.Background(), "SELECT content FROM drafts WHERE target_key = $1", targetKey).Scan(&content)
	if err != nil {
		return "", nil
	}
	return content, nil
}

func (s *PostgresStorage) ClearDraft(targetKey string) error {
	_, err := s.Pool.Exec(context.Background(), "DELETE FROM drafts WHERE target_key = $1", targetKey)
	return err
}
