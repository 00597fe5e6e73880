package api

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
