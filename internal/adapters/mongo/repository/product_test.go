package repository_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rafaelleal24/sales/internal/adapters/mongo"
	"github.com/rafaelleal24/sales/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

func createTestProduct(t *testing.T, repo interface {
	Create(ctx context.Context, product *domain.Product) error
}, name string, cents int64, productType domain.ProductType) *domain.Product {
	t.Helper()
	product := domain.NewProduct(name, domain.NewMoneyFromCents(cents), productType)
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("setup: create product failed: %v", err)
	}
	return product
}

func newProductRepository(db *mongodriver.Database) port.ProductPort {
	return repository.NewProductRepository(db, repository.NewOutboxRepository(db), mongo.NewTransactionManager(testClient))
}

func TestProductRepository_Create(t *testing.T) {
	repo := newProductRepository(testDB)
	ctx := context.Background()

	t.Run("creates product and assigns ID", func(t *testing.T) {
		product := domain.NewProduct("Widget", domain.NewMoneyFromCents(1500), domain.ProductTypeStandard)

		err := repo.Create(ctx, product)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(string(product.ID)) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q", product.ID)
		}
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := newProductRepository(testDB)
	ctx := context.Background()

	t.Run("returns product by ID", func(t *testing.T) {
		created := createTestProduct(t, repo, "Bread", 350, domain.ProductTypeFood)

		found, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.Name != created.Name {
			t.Fatalf("expected name %q, got %q", created.Name, found.Name)
		}
		if found.Price != created.Price {
			t.Fatalf("expected price %s, got %s", created.Price, found.Price)
		}
		if found.Type != domain.ProductTypeFood || !found.Available {
			t.Fatalf("expected available FOOD product, got %+v", found)
		}
	})

	t.Run("returns not found for non-existing ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "aabbccddee112233aabbccdd")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "bad-id")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})
}

func TestProductRepository_GetAll(t *testing.T) {
	freshDB := testClient.Database("test_product_getall")
	repo := newProductRepository(freshDB)
	ctx := context.Background()

	t.Run("returns empty list when no products", func(t *testing.T) {
		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected 0 products, got %d", len(products))
		}
	})

	t.Run("returns all created products", func(t *testing.T) {
		createTestProduct(t, repo, "Product 1", 1000, domain.ProductTypeStandard)
		createTestProduct(t, repo, "Product 2", 2000, domain.ProductTypeDrug)

		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
	})
}

func TestProductRepository_FindAvailableNearPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("returns both neighbours of the price", func(t *testing.T) {
		freshDB := testClient.Database("test_product_near_price")
		repo := newProductRepository(freshDB)

		createTestProduct(t, repo, "Expensive Milk", 900, domain.ProductTypeFood)
		createTestProduct(t, repo, "Cheap Milk", 200, domain.ProductTypeFood)
		createTestProduct(t, repo, "Aspirin", 300, domain.ProductTypeDrug)
		removed := createTestProduct(t, repo, "Removed Milk", 250, domain.ProductTypeFood)
		removed.MarkAsRemoved()
		if err := repo.Update(ctx, removed); err != nil {
			t.Fatalf("setup: remove product failed: %v", err)
		}

		products, err := repo.FindAvailableNearPrice(ctx, domain.ProductTypeFood, domain.NewMoneyFromCents(250), 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected one product on each side, got %d", len(products))
		}
		if products[0].Name != "Expensive Milk" || products[1].Name != "Cheap Milk" {
			t.Fatalf("expected [Expensive Milk, Cheap Milk], got [%s, %s]", products[0].Name, products[1].Name)
		}
	})

	t.Run("finds an exact match beyond the cheapest products", func(t *testing.T) {
		freshDB := testClient.Database("test_product_near_price_many")
		repo := newProductRepository(freshDB)

		for i := range 60 {
			createTestProduct(t, repo, fmt.Sprintf("Pen %02d", i), int64(100+i), domain.ProductTypeStandard)
		}
		twin := createTestProduct(t, repo, "Fountain Pen", 100000, domain.ProductTypeStandard)

		products, err := repo.FindAvailableNearPrice(ctx, domain.ProductTypeStandard, domain.NewMoneyFromCents(100000), 50)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 51 {
			t.Fatalf("expected 1 above and 50 below, got %d", len(products))
		}
		if products[0].ID != twin.ID {
			t.Fatalf("expected %s first, got %s", twin.ID, products[0].ID)
		}
		if products[1].Name != "Pen 59" {
			t.Fatalf("expected the nearest cheaper product next, got %q", products[1].Name)
		}
	})
}

func TestProductRepository_Update(t *testing.T) {
	freshDB := testClient.Database("test_product_update")
	outboxRepo := repository.NewOutboxRepository(freshDB)
	repo := repository.NewProductRepository(freshDB, outboxRepo, mongo.NewTransactionManager(testClient))
	ctx := context.Background()

	t.Run("removal writes product.removed to outbox", func(t *testing.T) {
		product := createTestProduct(t, repo, "Bread", 350, domain.ProductTypeFood)
		product.MarkAsRemoved()

		if err := repo.Update(ctx, product); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		stored, _ := repo.GetByID(ctx, product.ID)
		if stored.Available {
			t.Fatal("expected product to be unavailable")
		}

		entries, err := outboxRepo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 1 || entries[0].EventName != "product.removed" {
			t.Fatalf("expected one product.removed entry, got %+v", entries)
		}
		var event domain.ProductRemovedEvent
		if err := json.Unmarshal(entries[0].EventData, &event); err != nil {
			t.Fatalf("failed to decode event: %v", err)
		}
		if event.ProductID != product.ID {
			t.Fatalf("expected product id %s, got %s", product.ID, event.ProductID)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		product := domain.NewProduct("Ghost", domain.NewMoneyFromCents(100), domain.ProductTypeStandard)
		product.ID = "aabbccddee112233aabbccdd"

		err := repo.Update(ctx, product)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
