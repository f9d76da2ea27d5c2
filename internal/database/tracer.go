package database

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type slowQueryStartKey struct{}

type slowQueryStart struct {
	sql     string
	argsLen int
	at      time.Time
}

// slowQueryTracer logs statements that take longer than threshold at warn
// level. Bound values are never logged, only their count.
type slowQueryTracer struct {
	log       zerolog.Logger
	threshold time.Duration
	now       func() time.Time
}

func newSlowQueryTracer(logger zerolog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{
		log:       logger.With().Str("component", "database").Logger(),
		threshold: threshold,
		now:       time.Now,
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryStartKey{}, slowQueryStart{
		sql:     data.SQL,
		argsLen: len(data.Args),
		at:      t.now(),
	})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryStartKey{}).(slowQueryStart)
	if !ok {
		return
	}

	elapsed := t.now().Sub(start.at)
	if elapsed < t.threshold {
		return
	}

	event := t.log.Warn()
	if data.Err != nil {
		event = event.Err(data.Err)
	}

	event.
		Str("sql", strings.Join(strings.Fields(start.sql), " ")).
		Int("args", start.argsLen).
		Dur("elapsed", elapsed).
		Dur("threshold", t.threshold).
		Msg("slow query")
}
