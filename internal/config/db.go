package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds the connection string and the pool settings used at startup
type DBConfig struct {
	DSN string

	// MaxConns caps the pool; zero keeps the pgxpool default
	MaxConns int32

	ConnectAttempts int
	RetryInterval   time.Duration
}

// LoadDBConfig reads DATABASE_URL, or builds a keyword/value DSN from the DB_* variables
func LoadDBConfig() (*DBConfig, error) {
	cfg := &DBConfig{ConnectAttempts: 5, RetryInterval: 5 * time.Second}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DSN = url
	} else {
		var missing []string
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"} {
			if os.Getenv(key) == "" {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("database environment variables not set: %s (or set DATABASE_URL)", strings.Join(missing, ", "))
		}

		sslMode := os.Getenv("DB_SSLMODE")
		if sslMode == "" {
			sslMode = "disable"
		}
		cfg.DSN = strings.Join([]string{
			"host=" + dsnValue(os.Getenv("DB_HOST")),
			"port=" + dsnValue(os.Getenv("DB_PORT")),
			"user=" + dsnValue(os.Getenv("DB_USER")),
			"password=" + dsnValue(os.Getenv("DB_PASSWORD")),
			"dbname=" + dsnValue(os.Getenv("DB_NAME")),
			"sslmode=" + dsnValue(sslMode),
		}, " ")
	}

	if v := os.Getenv("DB_MAX_CONNS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid DB_MAX_CONNS %q", v)
		}
		cfg.MaxConns = int32(n)
	}
	if v := os.Getenv("DB_CONNECT_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid DB_CONNECT_ATTEMPTS %q", v)
		}
		cfg.ConnectAttempts = n
	}

	return cfg, nil
}

// dsnValue quotes v when a bare keyword/value token would misparse it
func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n\r\v\f'\\") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// ConnectDB opens the pool and pings it, retrying while Postgres comes up
func ConnectDB(ctx context.Context, cfg *DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	attempts := max(cfg.ConnectAttempts, 1)
	for attempt := 1; ; attempt++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Printf("Connected to PostgreSQL at %s:%d/%s", poolCfg.ConnConfig.Host, poolCfg.ConnConfig.Port, poolCfg.ConnConfig.Database)
				return pool, nil
			}
			pool.Close()
		}
		if attempt == attempts {
			break
		}

		log.Printf("Database not ready (attempt %d/%d): %v", attempt, attempts, err)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gave up connecting to database: %w", ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", attempts, err)
}

// Execer is the part of a pgx pool needed to apply the schema
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Schema creates the users, destinations and bookings tables if they don't exist
const Schema = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(120) UNIQUE NOT NULL,
		phone VARCHAR(20) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS destinations (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		type VARCHAR(20) NOT NULL CHECK (type IN ('beach', 'mountain', 'cultural', 'nature', 'adventure')),
		description TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL CHECK (price > 0),
		duration VARCHAR(50) NOT NULL,
		image_url VARCHAR(255) NOT NULL,
		rating DOUBLE PRECISION NOT NULL DEFAULT 4.5 CHECK (rating >= 0 AND rating <= 5),
		guide_name VARCHAR(100) NOT NULL,
		meeting_spot VARCHAR(255) NOT NULL,
		inclusions TEXT NOT NULL, -- JSON encoded list
		exclusions TEXT NOT NULL  -- JSON encoded list
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		destination_id INTEGER NOT NULL REFERENCES destinations(id),
		booking_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		travel_date DATE NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (payment_status IN ('pending', 'confirmed')),
		payment_id VARCHAR(255),
		booking_reference VARCHAR(100) UNIQUE NOT NULL
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_destinations_type ON destinations(type);
	CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id);
	CREATE INDEX IF NOT EXISTS idx_bookings_booking_date ON bookings(booking_date);
`

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db Execer) error {
	_, err := db.Exec(context.Background(), Schema)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}
