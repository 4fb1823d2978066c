package dto

import "github.com/rafaelleal24/sales/internal/core/domain"

type CreateProductRequest struct {
	Name  string             `json:"name" binding:"required" validate:"required"`
	Price int64              `json:"price" binding:"required,gt=0" validate:"gt=0"`
	Type  domain.ProductType `json:"type" binding:"required,oneof=STANDARD FOOD DRUG" validate:"oneof=STANDARD FOOD DRUG"`
}
