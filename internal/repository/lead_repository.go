// Package repository holds the data access layer. Leads are the only
// runtime-mutable records in the system; everything else the site serves is
// static content.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashworthrenovations/ashworth-api/internal/models"
)

// LeadRepositoryInterface defines lead persistence operations
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *models.Lead) (string, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context, q models.LeadListQuery) ([]*models.Lead, error)
	AttachPhotoURL(ctx context.Context, leadID, url string) error
}

// LeadRepository handles lead data access backed by PostgreSQL
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{
		pool: pool,
	}
}

// Create inserts a sanitized lead and returns its generated ID
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) (string, error) {
	query := `
		INSERT INTO leads (service, postcode, name, phone, email, photo_urls)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id string
	err := r.pool.QueryRow(ctx, query,
		lead.Service, lead.Postcode, lead.Name, lead.Phone, lead.Email, lead.PhotoURLs,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create lead: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single lead
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	query := `
		SELECT id, service, postcode, name, phone, email, photo_urls, created_at
		FROM leads
		WHERE id = $1
	`

	var lead models.Lead
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&lead.ID, &lead.Service, &lead.Postcode, &lead.Name,
		&lead.Phone, &lead.Email, &lead.PhotoURLs, &lead.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("lead %s not found", id)
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return &lead, nil
}

// List returns leads newest first, optionally narrowed to one postcode or
// service. Empty filter fields match everything.
func (r *LeadRepository) List(ctx context.Context, q models.LeadListQuery) ([]*models.Lead, error) {
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, service, postcode, name, phone, email, photo_urls, created_at
		FROM leads
		WHERE ($1 = '' OR upper(postcode) = upper($1))
		  AND ($2 = '' OR service = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, q.Postcode, q.Service, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		var lead models.Lead
		if err := rows.Scan(
			&lead.ID, &lead.Service, &lead.Postcode, &lead.Name,
			&lead.Phone, &lead.Email, &lead.PhotoURLs, &lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leads: %w", err)
	}

	return leads, nil
}

// AttachPhotoURL appends an uploaded photo URL to an existing lead
func (r *LeadRepository) AttachPhotoURL(ctx context.Context, leadID, url string) error {
	query := `
		UPDATE leads
		SET photo_urls = array_append(photo_urls, $2)
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, leadID, url)
	if err != nil {
		return fmt.Errorf("failed to attach photo to lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s not found", leadID)
	}

	return nil
}
