// Append-only audit log of every inbound and outbound text.
package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `CREATE TABLE IF NOT EXISTS historial (
	id BIGSERIAL PRIMARY KEY,
	usuario TEXT NOT NULL,
	mensaje TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type Log struct {
	pool   *pgxpool.Pool
	logger *zap.SugaredLogger
}

func New(pool *pgxpool.Pool, logger *zap.SugaredLogger) *Log {
	return &Log{
		pool:   pool,
		logger: logger.Named("history"),
	}
}

// Init ensures the log table exists.
func (l *Log) Init(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, schema)
	return err
}

// Record appends one line to the log. The log carries no invariants, so a
// failing insert is logged and swallowed rather than failing the request.
func (l *Log) Record(ctx context.Context, who, message string) {
	_, err := l.pool.Exec(ctx, "INSERT INTO historial (usuario, mensaje) VALUES ($1, $2)", who, message)

	if err != nil {
		l.logger.With(
			zap.String("who", who),
			zap.Error(err),
		).Error("Error recording message history")
	}
}
