package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wanderwith/internal/model"

	"github.com/jackc/pgx/v5"
)

// DestinationRepository defines operations for destination data
type DestinationRepository interface {
	Create(ctx context.Context, destination *model.Destination) error
	FindByID(ctx context.Context, id int) (*model.Destination, error)
	FindAll(ctx context.Context, filters model.DestinationFilters) ([]model.Destination, error)
	Count(ctx context.Context) (int64, error)
}

type destinationRepository struct {
	db DB
}

// NewDestinationRepository creates a new DestinationRepository
func NewDestinationRepository(db DB) DestinationRepository {
	return &destinationRepository{db: db}
}

const destinationColumns = `id, name, type, description, price, duration, image_url, rating, guide_name, meeting_spot, inclusions, exclusions`

// encodeList serializes a string list for a TEXT column, never as JSON null
func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	items := []string{}
	if raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func scanDestination(row pgx.Row) (*model.Destination, error) {
	d := &model.Destination{}
	var inclusions, exclusions string
	if err := row.Scan(
		&d.ID, &d.Name, &d.Type, &d.Description, &d.Price, &d.Duration,
		&d.ImageURL, &d.Rating, &d.GuideName, &d.MeetingSpot, &inclusions, &exclusions,
	); err != nil {
		return nil, err
	}

	var err error
	if d.Inclusions, err = decodeList(inclusions); err != nil {
		return nil, fmt.Errorf("failed to decode inclusions of destination %d: %w", d.ID, err)
	}
	if d.Exclusions, err = decodeList(exclusions); err != nil {
		return nil, fmt.Errorf("failed to decode exclusions of destination %d: %w", d.ID, err)
	}
	return d, nil
}

// Create inserts a new destination into the database
func (r *destinationRepository) Create(ctx context.Context, d *model.Destination) error {
	inclusions, err := encodeList(d.Inclusions)
	if err != nil {
		return fmt.Errorf("failed to encode inclusions: %w", err)
	}
	exclusions, err := encodeList(d.Exclusions)
	if err != nil {
		return fmt.Errorf("failed to encode exclusions: %w", err)
	}

	sql := `INSERT INTO destinations (name, type, description, price, duration, image_url, rating, guide_name, meeting_spot, inclusions, exclusions)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err = r.db.QueryRow(ctx, sql, d.Name, d.Type, d.Description, d.Price, d.Duration, d.ImageURL,
		d.Rating, d.GuideName, d.MeetingSpot, inclusions, exclusions).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	return nil
}

// FindByID retrieves a destination by its ID
func (r *destinationRepository) FindByID(ctx context.Context, id int) (*model.Destination, error) {
	sql := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`
	d, err := scanDestination(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find destination by ID: %w", err)
	}
	return d, nil
}

// FindAll retrieves destinations matching the category and search filters
func (r *destinationRepository) FindAll(ctx context.Context, filters model.DestinationFilters) ([]model.Destination, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + destinationColumns + ` FROM destinations`)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.Type != model.CategoryAll {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argCount))
		args = append(args, filters.Type)
		argCount++
	}
	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+escapeLike(filters.Search)+"%")
		//argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	destinations := []model.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan destination row: %w", err)
		}
		destinations = append(destinations, *d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating destination rows: %w", err)
	}
	return destinations, nil
}

// Count returns the number of stored destinations
func (r *destinationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count destinations: %w", err)
	}
	return count, nil
}

// escapeLike makes % and _ in user input match literally inside ILIKE patterns
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
