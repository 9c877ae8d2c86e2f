package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"olx-scraper/models"
	"olx-scraper/utils"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Gateway owns the database connection and exposes the existence check and
// the first-write-wins insert.
type Gateway struct {
	db     *sqlx.DB
	logger *utils.Logger
}

// NewGateway connects to Postgres and verifies the connection.
func NewGateway(dsn string, logger *utils.Logger) (*Gateway, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &Gateway{db: db, logger: logger}, nil
}

// NewGatewayFromDB wraps an existing connection; used by tests.
func NewGatewayFromDB(db *sqlx.DB, logger *utils.Logger) *Gateway {
	return &Gateway{db: db, logger: logger}
}

// CreateTable creates the ads table if it doesn't exist.
func (g *Gateway) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS ads (
		ad_id             TEXT PRIMARY KEY,
		title             TEXT,
		price             TEXT,
		user_name         TEXT,
		phone_number      TEXT,
		user_score        TEXT,
		user_registration TEXT,
		user_last_seen    TEXT,
		ad_view_counter   TEXT,
		location          TEXT,
		ad_pub_date       TEXT,
		url               TEXT,
		description       TEXT,
		ad_tags           TEXT[],
		img_src_list      TEXT[]
	)`
	if _, err := g.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	g.logger.Info("Table 'ads' is ready")
	return nil
}

// Exists reports whether an ad with this id is already stored. It is a
// pure optimization in front of Insert; the primary-key conflict on insert
// remains the duplicate guard.
func (g *Gateway) Exists(ctx context.Context, adID string) (bool, error) {
	var exists bool
	err := g.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM ads WHERE ad_id = $1)`, adID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ad %s: %w", adID, err)
	}
	return exists, nil
}

// Insert writes one record inside its own transaction. A primary-key
// conflict performs no update and reports ResultAlreadyPresent; driver
// errors roll back and surface.
func (g *Gateway) Insert(ctx context.Context, rec *models.AdRecord) (InsertResult, error) {
	tx, err := g.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO ads (ad_id, title, price, user_name, phone_number, user_score,
		                 user_registration, user_last_seen, ad_view_counter, location,
		                 ad_pub_date, url, description, ad_tags, img_src_list)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (ad_id) DO NOTHING`,
		rec.AdID,
		rec.Title,
		rec.Price,
		rec.UserName,
		rec.PhoneNumber,
		rec.UserScore,
		rec.UserRegistration,
		rec.UserLastSeen,
		rec.AdViewCounter,
		rec.Location,
		rec.AdPubDate,
		rec.URL,
		rec.Description,
		pq.Array(rec.AdTags),
		pq.Array(rec.ImgSrcList),
	)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to insert ad %s: %w", rec.AdID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to read rows affected for ad %s: %w", rec.AdID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ad %s: %w", rec.AdID, err)
	}

	if affected == 0 {
		g.logger.Debug("Ad %s already present, skipped", rec.AdID)
		return ResultAlreadyPresent, nil
	}
	return ResultStored, nil
}

// Close closes the database connection.
func (g *Gateway) Close() error {
	return g.db.Close()
}
