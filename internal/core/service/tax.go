package service

import (
	"fmt"

	"github.com/rafaelleal24/sales/internal/core/domain"
)

// Rates in basis points.
const (
	drugTaxRate     = 500
	foodTaxRate     = 700
	standardTaxRate = 2300
)

type DefaultTaxPolicy struct{}

func NewDefaultTaxPolicy() *DefaultTaxPolicy {
	return &DefaultTaxPolicy{}
}

func (p *DefaultTaxPolicy) CalculateTax(productType domain.ProductType, price domain.Money) (domain.Tax, error) {
	switch productType {
	case domain.ProductTypeDrug:
		return domain.NewTax(price.Percent(drugTaxRate), "5% (D)"), nil
	case domain.ProductTypeFood:
		return domain.NewTax(price.Percent(foodTaxRate), "7% (F)"), nil
	case domain.ProductTypeStandard:
		return domain.NewTax(price.Percent(standardTaxRate), "23%"), nil
	default:
		return domain.Tax{}, fmt.Errorf("unsupported product type %q", productType)
	}
}

// FlatTaxPolicy applies the same rate to every product type.
type FlatTaxPolicy struct {
	basisPoints int64
	description string
}

func NewFlatTaxPolicy(basisPoints int64, description string) *FlatTaxPolicy {
	if description == "" {
		description = fmt.Sprintf("%d.%02d%%", basisPoints/100, basisPoints%100)
	}
	return &FlatTaxPolicy{basisPoints: basisPoints, description: description}
}

func (p *FlatTaxPolicy) CalculateTax(productType domain.ProductType, price domain.Money) (domain.Tax, error) {
	if !productType.IsValid() {
		return domain.Tax{}, fmt.Errorf("unsupported product type %q", productType)
	}
	return domain.NewTax(price.Percent(p.basisPoints), p.description), nil
}
