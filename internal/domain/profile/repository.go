package profile

import "context"

// ProfileRepository defines read access to the profiles table.
type ProfileRepository interface {
	// GetByID returns the profile row for the given id, or ErrProfileNotFound.
	GetByID(ctx context.Context, id string) (*Profile, error)

	// GetByEmail returns the profile row for the given email, or ErrProfileNotFound.
	GetByEmail(ctx context.Context, email string) (*Profile, error)
}
