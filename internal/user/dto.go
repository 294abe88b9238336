// AngelaMos | 2026
// dto.go

package user

type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Admin Client"`
}
