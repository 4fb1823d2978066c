package dto

type CreateClientRequest struct {
	Name string `json:"name" binding:"required" validate:"required"`
}
