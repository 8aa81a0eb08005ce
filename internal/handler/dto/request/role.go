package request

import (
	"car-rental/internal/domain/role"
)

type CreateRoleRequest struct {
	RoleName string `json:"role_name" binding:"required"`
}

func (r *CreateRoleRequest) ToDomain() (*role.Role, error) {
	return role.NewRole(r.RoleName)
}

type UpdateRoleRequest struct {
	RoleID   int64  `form:"role_id" binding:"required,gt=0"`
	RoleName string `form:"role_name" binding:"required"`
}

func (r *UpdateRoleRequest) ToDomain() (*role.Role, error) {
	updated, err := role.NewRole(r.RoleName)
	if err != nil {
		return nil, err
	}
	updated.ID = r.RoleID
	return updated, nil
}

type DeleteRoleRequest struct {
	RoleID int64 `form:"role_id" binding:"required,gt=0"`
}
