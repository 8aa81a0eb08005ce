package response

import (
	"car-rental/internal/domain/role"
	"car-rental/internal/usecase/queries"
)

type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"role_name"`
}

func FromRole(r *role.Role) RoleResponse {
	return copyTo[RoleResponse](r)
}

func FromRoleViews(views []queries.RoleView) []RoleResponse {
	return copyList[RoleResponse](views)
}
