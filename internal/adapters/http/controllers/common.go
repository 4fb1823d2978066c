package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ProductSnapshotResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Type  string `json:"type"`
}

func NewProductSnapshotResponse(s domain.ProductSnapshot) ProductSnapshotResponse {
	return ProductSnapshotResponse{
		ID:    string(s.ID),
		Name:  s.Name,
		Price: s.Price.Cents(),
		Type:  string(s.Type),
	}
}

type ClientDataResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func pathID(c *gin.Context, entity string) (domain.ID, error) {
	id := c.Param("id")
	if !domain.ValidateID(id) {
		return "", serviceerrors.NewInvalidRequestError("Invalid " + entity + " ID")
	}
	return domain.ID(id), nil
}
