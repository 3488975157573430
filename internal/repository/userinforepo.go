package repository

import (
	"context"

	"github.com/kharvol/tms/internal/model"
)

// UserInfoRepository provides CRUD access for user accounts plus the
// natural-key lookups the user service's duplicate checks rely on.
type UserInfoRepository interface {
	Store[*model.UserInfo]

	// FindByUsername loads a user by username; errs.ErrNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*model.UserInfo, error)
	// ExistsByUsername reports whether any user holds the username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// ExistsByUsernameExcludingID reports whether a user other than id holds the username.
	ExistsByUsernameExcludingID(ctx context.Context, username, id string) (bool, error)
}
