package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulsehr-backend-go/internal/domain/profile"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db database.Querier
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `id, email, password_hash, full_name, avatar_url, job_title, role, created_at`

func (r *profileRepositoryImpl) scanProfile(row pgx.Row) (*profile.Profile, error) {
	var p profile.Profile
	var role string
	err := row.Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.AvatarURL, &p.JobTitle, &role, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	p.Role = profile.Role(role)
	return &p, nil
}

func (r *profileRepositoryImpl) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)
	return r.scanProfile(r.db.QueryRow(ctx, query, id))
}

func (r *profileRepositoryImpl) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE email = $1`, profileColumns)
	return r.scanProfile(r.db.QueryRow(ctx, query, email))
}
