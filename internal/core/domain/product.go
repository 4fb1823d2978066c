package domain

import "time"

type ProductType string

const (
	ProductTypeStandard ProductType = "STANDARD"
	ProductTypeFood     ProductType = "FOOD"
	ProductTypeDrug     ProductType = "DRUG"
)

func (t ProductType) IsValid() bool {
	return t == ProductTypeStandard || t == ProductTypeFood || t == ProductTypeDrug
}

type Product struct {
	ID        ID
	Name      string
	Price     Money
	Type      ProductType
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(name string, price Money, productType ProductType) *Product {
	return &Product{
		Name:      name,
		Price:     price,
		Type:      productType,
		Available: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// MarkAsRemoved withdraws the product from sale. Existing snapshots are unaffected.
func (p *Product) MarkAsRemoved() {
	p.Available = false
	p.UpdatedAt = time.Now()
}

func (p *Product) GenerateSnapshot() ProductSnapshot {
	return NewProductSnapshot(p.ID, p.Name, p.Price, p.Type)
}

// ProductSnapshot is a point-in-time copy of a product used by reservations and invoices.
type ProductSnapshot struct {
	ID    ID          `json:"id"`
	Name  string      `json:"name"`
	Price Money       `json:"price"`
	Type  ProductType `json:"type"`
}

func NewProductSnapshot(id ID, name string, price Money, productType ProductType) ProductSnapshot {
	return ProductSnapshot{
		ID:    id,
		Name:  name,
		Price: price,
		Type:  productType,
	}
}

type ProductRemovedEvent struct {
	ProductID ID          `json:"product_id"`
	Name      string      `json:"name"`
	Type      ProductType `json:"type"`
	RemovedAt time.Time   `json:"removed_at"`
}

func (e *ProductRemovedEvent) GetName() string {
	return "product.removed"
}

func (e *ProductRemovedEvent) GetEntityName() string {
	return "product"
}

func NewProductRemovedEvent(product *Product) *ProductRemovedEvent {
	return &ProductRemovedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Type:      product.Type,
		RemovedAt: product.UpdatedAt,
	}
}
