package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// PostgresPersister пишет целиком снимок именованного хранилища в
// таблицу snapshots. Запись синхронная: вызывающая операция ядра не
// считается успешной, пока снимок не лег в базу.
type PostgresPersister struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
}

// NewPostgresPersister создает персистер над пулом соединений
func NewPostgresPersister(db *pgxpool.Pool, logger *logrus.Logger) *PostgresPersister {
	return &PostgresPersister{
		db:     db,
		logger: logger,
	}
}

// Persist сериализует снимок и апсертит его по имени хранилища
func (p *PostgresPersister) Persist(ctx context.Context, storeName string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for store %q: %w", storeName, err)
	}

	query := `
		INSERT INTO snapshots (store_name, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (store_name) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW();
	`
	if _, err := p.db.Exec(ctx, query, storeName, data); err != nil {
		return fmt.Errorf("failed to persist snapshot for store %q: %w", storeName, err)
	}

	p.logger.WithFields(logrus.Fields{
		"component": "persistence",
		"store":     storeName,
		"bytes":     len(data),
	}).Debug("Snapshot persisted")
	return nil
}

// Load читает последний снимок хранилища; false - снимка еще нет
func (p *PostgresPersister) Load(ctx context.Context, storeName string, out any) (bool, error) {
	var data []byte
	query := `SELECT payload FROM snapshots WHERE store_name = $1;`
	err := p.db.QueryRow(ctx, query, storeName).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load snapshot for store %q: %w", storeName, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal snapshot for store %q: %w", storeName, err)
	}
	return true, nil
}
