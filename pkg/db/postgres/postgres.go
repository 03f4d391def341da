package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f1board/f1board/log"
)

type PoolConfigOption func(cfg *pgxpool.Config)

func WithTracer(tracer pgx.QueryTracer) PoolConfigOption {
	return func(cfg *pgxpool.Config) {
		cfg.ConnConfig.Tracer = tracer
	}
}

func WithMaxConns(n int32) PoolConfigOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = n
		}
	}
}

// InitWithURL creates a pool for url and verifies the connection.
func InitWithURL(ctx context.Context, url string, opts ...PoolConfigOption) (
	*pgxpool.Pool, error,
) {
	dbConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	for _, opt := range opts {
		opt(dbConfig)
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// NewOtlpTracer creates spans for each query.
func NewOtlpTracer() pgx.QueryTracer {
	return otelpgx.NewTracer()
}

type startKey struct{}

type myQueryTracer struct {
	log   *log.Logger
	level log.Level
}

// NewMyTracer logs every statement on level using l.
func NewMyTracer(l *log.Logger, level log.Level) pgx.QueryTracer {
	return &myQueryTracer{log: l, level: level}
}

func (tracer *myQueryTracer) TraceQueryStart(
	ctx context.Context,
	_ *pgx.Conn,
	data pgx.TraceQueryStartData,
) context.Context {
	tracer.log.Log(tracer.level, "Executing",
		log.String("sql", data.SQL), log.Any("args", data.Args))
	return context.WithValue(ctx, startKey{}, time.Now())
}

//nolint:whitespace // can't make the linters happy
func (tracer *myQueryTracer) TraceQueryEnd(
	ctx context.Context,
	_ *pgx.Conn,
	data pgx.TraceQueryEndData,
) {
	fields := []log.Field{log.String("tag", data.CommandTag.String())}
	if start, ok := ctx.Value(startKey{}).(time.Time); ok {
		fields = append(fields, log.Duration("duration", time.Since(start)))
	}
	if data.Err != nil {
		tracer.log.Warn("Query failed", append(fields, log.ErrorField(data.Err))...)
		return
	}
	tracer.log.Log(tracer.level, "Finished", fields...)
}
