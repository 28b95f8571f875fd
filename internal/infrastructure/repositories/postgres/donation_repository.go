package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type PostgresDonationRepository struct {
	db *sql.DB
}

func NewPostgresDonationRepository(db *sql.DB) ports.DonationRepository {
	return &PostgresDonationRepository{db: db}
}

func (r *PostgresDonationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO donations (id, donor_id, amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, donation.ID, donation.DonorID, donation.Amount, donation.Currency, donation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

func (r *PostgresDonationRepository) List(ctx context.Context) ([]*domain.Donation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, donor_id, amount, currency, created_at
		FROM donations ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer rows.Close()

	var result []*domain.Donation
	for rows.Next() {
		var donation domain.Donation
		if err := rows.Scan(&donation.ID, &donation.DonorID, &donation.Amount,
			&donation.Currency, &donation.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		result = append(result, &donation)
	}
	return result, rows.Err()
}

func (r *PostgresDonationRepository) Leaderboard(ctx context.Context, limit int) ([]domain.UserID, []float64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT donor_id, SUM(amount) AS total
		FROM donations
		GROUP BY donor_id
		ORDER BY total DESC, donor_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var donors []domain.UserID
	var totals []float64
	for rows.Next() {
		var donor domain.UserID
		var total float64
		if err := rows.Scan(&donor, &total); err != nil {
			return nil, nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		donors = append(donors, donor)
		totals = append(totals, total)
	}
	return donors, totals, rows.Err()
}
