package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/expense-categories/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "::1",
		Port:     5432,
		User:     "expenses-user",
		Password: "p@ss word",
		Name:     "expenses-db",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://expenses-user:p%40ss%20word@[::1]:5432/expenses-db?sslmode=disable", dsn)
}

func TestDSNRoundTripsCredentials(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     6432,
		User:     "ops@team",
		Password: "a b+c:d/e?f#g",
		Name:     "expenses",
		SSLMode:  "require",
	}

	parsed, err := pgx.ParseConfig(DSN(cfg))
	require.NoError(t, err)

	assert.Equal(t, cfg.Host, parsed.Host)
	assert.Equal(t, uint16(cfg.Port), parsed.Port)
	assert.Equal(t, cfg.User, parsed.User)
	assert.Equal(t, cfg.Password, parsed.Password)
	assert.Equal(t, cfg.Name, parsed.Database)
}

func TestApplyPoolSettings(t *testing.T) {
	poolConfig, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/db?sslmode=disable")
	require.NoError(t, err)

	applyPoolSettings(poolConfig, config.DatabaseConfig{
		MaxOpenConns:    8,
		MaxIdleConns:    2,
		ConnMaxLifetime: 300,
		ConnMaxIdleTime: 60,
	})

	assert.Equal(t, int32(8), poolConfig.MaxConns)
	assert.Equal(t, int32(2), poolConfig.MinConns)
	assert.Equal(t, 5*time.Minute, poolConfig.MaxConnLifetime)
	assert.Equal(t, time.Minute, poolConfig.MaxConnIdleTime)
}

func TestBuildTracer(t *testing.T) {
	logger := zerolog.Nop()

	cfg := &config.Config{Primary: config.Primary{Env: "production"}}
	assert.Nil(t, buildTracer(cfg, &logger, nil))

	cfg.Observability = config.DefaultObservabilityConfig()
	_, single := buildTracer(cfg, &logger, nil).(*slowQueryTracer)
	assert.True(t, single)

	cfg.Primary.Env = "local"
	_, chained := buildTracer(cfg, &logger, nil).(*multiTracer)
	assert.True(t, chained)
}

func TestSlowQueryTracer(t *testing.T) {
	var out strings.Builder
	logger := zerolog.New(&out)
	tracer := &slowQueryTracer{logger: &logger, threshold: 0}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	assert.Contains(t, out.String(), "slow query")

	out.Reset()
	tracer.threshold = time.Hour
	ctx = tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	assert.Empty(t, out.String())
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS common_categories")
	assert.Contains(t, string(body), "---- create above / drop below ----")
}
