package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ficlear/internal/pincode/models"
)

// Postgres persists the directory in a single table. It is the backend of
// choice for full India Post imports (150K+ offices) where Redis keyspace
// scans stop being reasonable.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed directory store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema creates the directory table when it does not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS pincode_offices (
			pincode         TEXT NOT NULL,
			office_name     TEXT NOT NULL,
			office_type     TEXT NOT NULL DEFAULT '',
			delivery_status TEXT NOT NULL DEFAULT '',
			division_name   TEXT NOT NULL DEFAULT '',
			region_name     TEXT NOT NULL DEFAULT '',
			circle_name     TEXT NOT NULL DEFAULT '',
			taluk           TEXT NOT NULL DEFAULT '',
			district_name   TEXT NOT NULL DEFAULT '',
			state_name      TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (pincode, office_name)
		);
		CREATE INDEX IF NOT EXISTS pincode_offices_district_idx
			ON pincode_offices (lower(district_name));
	`)
	if err != nil {
		return fmt.Errorf("ensure pincode schema: %w", err)
	}
	return nil
}

func (s *Postgres) Upsert(ctx context.Context, record *models.PostalRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO pincode_offices (
			pincode, office_name, office_type, delivery_status,
			division_name, region_name, circle_name, taluk,
			district_name, state_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (pincode, office_name) DO UPDATE SET
			office_type = EXCLUDED.office_type,
			delivery_status = EXCLUDED.delivery_status,
			division_name = EXCLUDED.division_name,
			region_name = EXCLUDED.region_name,
			circle_name = EXCLUDED.circle_name,
			taluk = EXCLUDED.taluk,
			district_name = EXCLUDED.district_name,
			state_name = EXCLUDED.state_name
	`, record.Pincode, record.OfficeName, record.OfficeType, record.DeliveryStatus,
		record.DivisionName, record.RegionName, record.CircleName, record.Taluk,
		record.DistrictName, record.StateName)
	if err != nil {
		return fmt.Errorf("upsert postal record: %w", err)
	}
	return nil
}

const selectColumns = `
	pincode, office_name, office_type, delivery_status,
	division_name, region_name, circle_name, taluk,
	district_name, state_name`

func (s *Postgres) FindByPincode(ctx context.Context, pincode string) ([]models.PostalRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+selectColumns+`
		FROM pincode_offices
		WHERE pincode = $1
		ORDER BY office_name
	`, pincode)
	if err != nil {
		return nil, fmt.Errorf("query postal records: %w", err)
	}
	return collectRecords(rows)
}

func (s *Postgres) SearchByArea(ctx context.Context, query string, limit int) ([]models.PostalRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+selectColumns+`
		FROM pincode_offices
		WHERE office_name ILIKE '%' || $1 || '%'
		   OR district_name ILIKE '%' || $1 || '%'
		   OR division_name ILIKE '%' || $1 || '%'
		   OR state_name ILIKE '%' || $1 || '%'
		ORDER BY pincode, office_name
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search postal records: %w", err)
	}
	return collectRecords(rows)
}

func (s *Postgres) DeleteByPincode(ctx context.Context, pincode string) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM pincode_offices WHERE pincode = $1`, pincode)
	if err != nil {
		return 0, fmt.Errorf("delete postal records: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *Postgres) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM pincode_offices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count postal records: %w", err)
	}
	return count, nil
}

func collectRecords(rows pgx.Rows) ([]models.PostalRecord, error) {
	defer rows.Close()
	var out []models.PostalRecord
	for rows.Next() {
		var r models.PostalRecord
		if err := rows.Scan(
			&r.Pincode, &r.OfficeName, &r.OfficeType, &r.DeliveryStatus,
			&r.DivisionName, &r.RegionName, &r.CircleName, &r.Taluk,
			&r.DistrictName, &r.StateName,
		); err != nil {
			return nil, fmt.Errorf("scan postal record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate postal records: %w", err)
	}
	return out, nil
}
