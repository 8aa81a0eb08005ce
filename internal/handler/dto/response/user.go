package response

import (
	"car-rental/internal/domain/user"
	"car-rental/internal/usecase/queries"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name,omitempty"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID(),
		Username: u.Username().Value(),
		Email:    u.Email().Value(),
		RoleID:   u.RoleID(),
	}
}

func FromUserView(v queries.UserView) UserResponse {
	return copyTo[UserResponse](&v)
}

func FromUserViews(views []queries.UserView) []UserResponse {
	return copyList[UserResponse](views)
}
