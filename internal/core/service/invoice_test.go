package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/dto"
	"github.com/rafaelleal24/sales/internal/core/port/mock"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

type invoiceMocks struct {
	invoiceRepo  *mock.MockInvoicePort
	productRepo  *mock.MockProductPort
	clientRepo   *mock.MockClientPort
	invoiceCache *mock.MockCachePort[domain.Invoice]
	idemCache    *mock.MockCachePort[IdempotencyEntry[domain.Invoice]]
	txManager    *mock.MockTransactionManager
}

func setupInvoiceService(t *testing.T) (*InvoiceService, *invoiceMocks) {
	ctrl := gomock.NewController(t)

	m := &invoiceMocks{
		invoiceRepo:  mock.NewMockInvoicePort(ctrl),
		productRepo:  mock.NewMockProductPort(ctrl),
		clientRepo:   mock.NewMockClientPort(ctrl),
		invoiceCache: mock.NewMockCachePort[domain.Invoice](ctrl),
		idemCache:    mock.NewMockCachePort[IdempotencyEntry[domain.Invoice]](ctrl),
		txManager:    mock.NewMockTransactionManager(ctrl),
	}

	idemSvc := NewIdempotencyService[domain.Invoice](m.idemCache, 15*time.Minute, 50*time.Millisecond, 500*time.Millisecond)
	svc := NewInvoiceService(
		m.invoiceRepo,
		m.productRepo,
		m.clientRepo,
		NewBookKeeper(NewInvoiceFactory()),
		NewDefaultTaxPolicy(),
		m.invoiceCache,
		15*time.Minute,
		idemSvc,
		m.txManager,
	)
	return svc, m
}

func issueRequest() *dto.IssueInvoiceRequest {
	return &dto.IssueInvoiceRequest{
		ClientID: testClientID,
		Items: []dto.InvoiceItem{
			{ProductID: testProductID, Quantity: 3},
			{ProductID: testSubstituteID, Quantity: 1},
		},
	}
}

func expectIssuance(m *invoiceMocks) {
	m.clientRepo.EXPECT().GetByID(gomock.Any(), testClientID).Return(&domain.Client{ID: testClientID, Name: "Jan Kowalski"}, nil)
	m.productRepo.EXPECT().GetByID(gomock.Any(), testProductID).Return(newTestProduct(testProductID, "Milk", 199, domain.ProductTypeStandard), nil)
	m.productRepo.EXPECT().GetByID(gomock.Any(), testSubstituteID).Return(newTestProduct(testSubstituteID, "Aspirin", 1000, domain.ProductTypeDrug), nil)
	runInTransaction(m.txManager)
	m.invoiceRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *domain.Invoice) error {
			inv.ID = "aabbccddee112233aabbcc99"
			return nil
		})
	m.invoiceCache.EXPECT().Set(gomock.Any(), "invoice:aabbccddee112233aabbcc99", gomock.Any(), 15*time.Minute).Return(nil)
}

func TestInvoiceService_IssueInvoice(t *testing.T) {
	t.Run("success without idempotency key", func(t *testing.T) {
		svc, m := setupInvoiceService(t)
		expectIssuance(m)

		invoice, err := svc.IssueInvoice(context.Background(), "", issueRequest())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(invoice.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(invoice.Lines))
		}
		// 3 x 1.99 standard + 1 x 10.00 drug
		if invoice.Net != domain.NewMoneyFromCents(1597) {
			t.Fatalf("expected net 15.97, got %s", invoice.Net)
		}
		// 23% of 1.99 = 0.46, 5% of 10.00 = 0.50
		if invoice.Tax != domain.NewMoneyFromCents(96) {
			t.Fatalf("expected tax 0.96, got %s", invoice.Tax)
		}
		if invoice.Lines[0].Item.TotalCost != domain.NewMoneyFromCents(597) {
			t.Fatalf("expected first line total 5.97, got %s", invoice.Lines[0].Item.TotalCost)
		}
	})

	t.Run("success with idempotency key", func(t *testing.T) {
		svc, m := setupInvoiceService(t)
		expectIssuance(m)

		m.idemCache.EXPECT().SetNX(gomock.Any(), "idem-1", gomock.Any(), 15*time.Minute).Return(true, nil)
		m.idemCache.EXPECT().Set(gomock.Any(), "idem-1", gomock.Any(), 15*time.Minute).Return(nil)

		if _, err := svc.IssueInvoice(context.Background(), "idem-1", issueRequest()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("replayed key returns stored invoice", func(t *testing.T) {
		svc, m := setupInvoiceService(t)
		request := issueRequest()
		hash, _ := hashPayload(request)
		stored := &domain.Invoice{ID: "aabbccddee112233aabbcc99", Number: "INV-1"}

		m.idemCache.EXPECT().SetNX(gomock.Any(), "idem-1", gomock.Any(), 15*time.Minute).Return(false, nil)
		m.idemCache.EXPECT().Get(gomock.Any(), "idem-1").Return(&IdempotencyEntry[domain.Invoice]{
			Status:      IdempotencyCompleted,
			PayloadHash: hash,
			Result:      stored,
		}, nil)

		invoice, err := svc.IssueInvoice(context.Background(), "idem-1", request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if invoice.Number != "INV-1" {
			t.Fatalf("expected stored invoice, got %+v", invoice)
		}
	})

	t.Run("client not found releases key", func(t *testing.T) {
		svc, m := setupInvoiceService(t)

		m.idemCache.EXPECT().SetNX(gomock.Any(), "idem-1", gomock.Any(), gomock.Any()).Return(true, nil)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), testClientID).Return(nil, serviceerrors.NewNotFoundError("document not found"))
		m.idemCache.EXPECT().Del(gomock.Any(), "idem-1").Return(nil)

		_, err := svc.IssueInvoice(context.Background(), "idem-1", issueRequest())
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("empty items rejected", func(t *testing.T) {
		svc, _ := setupInvoiceService(t)

		_, err := svc.IssueInvoice(context.Background(), "", &dto.IssueInvoiceRequest{ClientID: testClientID})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("transaction error", func(t *testing.T) {
		svc, m := setupInvoiceService(t)

		m.clientRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.Client{ID: testClientID}, nil)
		m.productRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(newTestProduct(testProductID, "Milk", 199, domain.ProductTypeStandard), nil).Times(2)
		m.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))

		if _, err := svc.IssueInvoice(context.Background(), "", issueRequest()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestInvoiceService_GetInvoiceByID(t *testing.T) {
	id := domain.ID("aabbccddee112233aabbcc99")

	t.Run("cache hit", func(t *testing.T) {
		svc, m := setupInvoiceService(t)

		m.invoiceCache.EXPECT().Get(gomock.Any(), "invoice:"+string(id)).Return(&domain.Invoice{ID: id}, nil)

		invoice, err := svc.GetInvoiceByID(context.Background(), id)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if invoice.ID != id {
			t.Fatalf("expected invoice id %s, got %s", id, invoice.ID)
		}
	})

	t.Run("cache miss - not found", func(t *testing.T) {
		svc, m := setupInvoiceService(t)

		m.invoiceCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.invoiceRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, serviceerrors.NewNotFoundError("document not found"))

		_, err := svc.GetInvoiceByID(context.Background(), id)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
