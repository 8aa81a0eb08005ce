//go:build unit || e2e

package builder

import (
	"car-rental/internal/domain/user"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/queries"
)

type UserBuilder struct {
	ID           int64
	Username     string
	Email        string
	Password     string
	PasswordHash string
	RoleID       int64
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Username:     "alice",
		Email:        "a@x.com",
		Password:     "pw",
		PasswordHash: "hashed_password",
		RoleID:       1,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	if mutate != nil {
		mutate(u)
	}
	return u
}

func (u *UserBuilder) WithUsername(name string) *UserBuilder {
	u.Username = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRoleID(id int64) *UserBuilder {
	u.RoleID = id
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(name, email, u.PasswordHash, u.RoleID)
}

func (u *UserBuilder) BuildStored() *user.User {
	return user.Reconstruct(u.ID, u.Username, u.Email, u.PasswordHash, u.RoleID)
}

func (u *UserBuilder) BuildView() queries.UserView {
	return queries.UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		RoleID:   u.RoleID,
	}
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		RoleID:   u.RoleID,
	}
}
