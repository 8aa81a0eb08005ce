package request

import (
	"car-rental/internal/domain/user"
)

type CreateUserRequest struct {
	Username string `json:"user_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   int64  `json:"role_id" binding:"required,gt=0"`
}

// ToDomain validates the profile fields; the password is hashed by the caller.
func (r *CreateUserRequest) ToDomain(passwordHash string) (*user.User, error) {
	username, email, err := parseProfile(r.Username, r.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, passwordHash, r.RoleID)
}

type UpdateUserRequest struct {
	UserID      int64  `form:"user_id" binding:"required,gt=0"`
	Username    string `form:"user_name" binding:"required"`
	Email       string `form:"email" binding:"required"`
	OldPassword string `form:"old_password" binding:"required"`
	NewPassword string `form:"new_password" binding:"required"`
	RoleID      int64  `form:"role_id" binding:"required,gt=0"`
}

func (r *UpdateUserRequest) Profile() (user.Username, user.Email, error) {
	return parseProfile(r.Username, r.Email)
}

type DeleteUserRequest struct {
	UserID int64 `form:"user_id" binding:"required,gt=0"`
}

func parseProfile(rawUsername, rawEmail string) (user.Username, user.Email, error) {
	username, err := user.NewUsername(rawUsername)
	if err != nil {
		return user.Username{}, user.Email{}, err
	}
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return user.Username{}, user.Email{}, err
	}
	return username, email, nil
}
