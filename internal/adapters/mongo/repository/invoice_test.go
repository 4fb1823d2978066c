package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/rafaelleal24/sales/internal/adapters/mongo"
	"github.com/rafaelleal24/sales/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/sales/internal/core/domain"
)

func TestInvoiceRepository_CreateInTransaction(t *testing.T) {
	freshDB := testClient.Database("test_invoices")
	outboxRepo := repository.NewOutboxRepository(freshDB)
	repo := repository.NewInvoiceRepository(freshDB, outboxRepo)
	txManager := mongo.NewTransactionManager(testClient)
	ctx := context.Background()

	client := domain.NewClientData("aabbccddee112233aabbccdd", "Jan Kowalski")
	aspirin := domain.NewProductSnapshot("aabbccddee112233aabbcc01", "Aspirin", domain.NewMoneyFromCents(1000), domain.ProductTypeDrug)
	invoice := domain.NewInvoice("INV-REPO-1", client, time.Now().UTC().Truncate(time.Millisecond))
	invoice.AddLine(domain.NewRequestItem(aspirin, 2, domain.NewMoneyFromCents(2000)), domain.NewTax(domain.NewMoneyFromCents(50), "5% (D)"))

	err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return repo.Create(txCtx, invoice)
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(string(invoice.ID)) != 24 {
		t.Fatalf("expected 24-char hex ID, got %q", invoice.ID)
	}

	found, err := repo.GetByID(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found.Number != "INV-REPO-1" || found.Net != invoice.Net || found.Tax != invoice.Tax {
		t.Fatalf("unexpected invoice %+v", found)
	}
	if len(found.Lines) != 1 || found.Lines[0].Item.Product != aspirin {
		t.Fatalf("unexpected lines %+v", found.Lines)
	}

	entries, err := outboxRepo.FetchPending(ctx, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 1 || entries[0].EventName != "invoice.issued" || entries[0].EntityName != "invoice" {
		t.Fatalf("expected one invoice.issued entry, got %+v", entries)
	}
}
