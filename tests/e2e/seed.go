//go:build e2e

package e2e

import (
	"context"
	"testing"

	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase"
	"car-rental/tests/common/authtest"

	"github.com/stretchr/testify/require"
)

// bootstrapCaller stands in for an operator seeding the first admin before anyone can log in.
var bootstrapCaller = usecase.Caller{IsAdmin: true}

type Account struct {
	UserID int64
	RoleID int64
	Token  string
}

// SeedAccount creates a role and a user through the command layer and logs the user in over HTTP.
func (s *SharedSuite) SeedAccount(t *testing.T, roleName, username, password string) Account {
	t.Helper()
	ctx := context.Background()

	var roleID int64
	err := s.DB.QueryRow(ctx, "SELECT id FROM roles WHERE name = $1", roleName).Scan(&roleID)
	if err != nil {
		r, err := s.RoleCommands.Create(ctx, bootstrapCaller, reqdto.CreateRoleRequest{RoleName: roleName})
		require.NoError(t, err)
		roleID = r.ID
	}

	u, err := s.UserCommands.Create(ctx, bootstrapCaller, reqdto.CreateUserRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
		RoleID:   roleID,
	})
	require.NoError(t, err)

	return Account{
		UserID: u.ID(),
		RoleID: roleID,
		Token:  authtest.LoginUser(t, s.Router, username, password),
	}
}

// Envelope mirrors the success body with a typed payload.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}
