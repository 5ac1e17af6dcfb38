package ports

import (
	"context"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

type AuthService interface {
	// Login authenticates by email and password and makes the matching
	// user the active session. Returns a signed session token alongside
	// the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register creates a new account and logs it in immediately. Fails
	// with domain.ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, name, email, password, role string) (string, *domain.User, error)
	// Logout clears the active session unconditionally.
	Logout(ctx context.Context) error
}
