package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/dto"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	"github.com/rafaelleal24/sales/internal/core/validation"
)

type InvoiceService struct {
	invoiceRepository port.InvoicePort
	productRepository port.ProductPort
	clientRepository  port.ClientPort
	bookKeeper        *BookKeeper
	taxPolicy         port.TaxPolicy
	invoiceCache      port.CachePort[domain.Invoice]
	cacheTTL          time.Duration
	idempotency       *IdempotencyService[domain.Invoice]
	txManager         port.TransactionManager
}

func NewInvoiceService(
	invoiceRepository port.InvoicePort,
	productRepository port.ProductPort,
	clientRepository port.ClientPort,
	bookKeeper *BookKeeper,
	taxPolicy port.TaxPolicy,
	invoiceCache port.CachePort[domain.Invoice],
	cacheTTL time.Duration,
	idempotency *IdempotencyService[domain.Invoice],
	txManager port.TransactionManager,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepository: invoiceRepository,
		productRepository: productRepository,
		clientRepository:  clientRepository,
		bookKeeper:        bookKeeper,
		taxPolicy:         taxPolicy,
		invoiceCache:      invoiceCache,
		cacheTTL:          cacheTTL,
		idempotency:       idempotency,
		txManager:         txManager,
	}
}

func (s *InvoiceService) getCacheKey(invoiceID domain.ID) string {
	return fmt.Sprintf("invoice:%s", invoiceID)
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID domain.ID) (*domain.Invoice, error) {
	cached, err := s.invoiceCache.Get(ctx, s.getCacheKey(invoiceID))
	if err != nil {
		logger.Error(ctx, "cache: get invoice failed", err, map[string]any{
			"invoice_id": invoiceID,
		})
	}
	if cached != nil {
		logger.Info(ctx, "invoice found in cache", map[string]any{
			"invoice_id": invoiceID,
		})
		return cached, nil
	}

	invoice, err := s.invoiceRepository.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "invoice not found")
	}

	if err := s.invoiceCache.Set(ctx, s.getCacheKey(invoiceID), invoice, s.cacheTTL); err != nil {
		logger.Error(ctx, "cache: set invoice failed", err, map[string]any{
			"invoice_id": invoiceID,
		})
	}

	return invoice, nil
}

// IssueInvoice prices and taxes the requested items for the client. Requests repeated
// with the same idempotency key and payload return the invoice issued the first time.
func (s *InvoiceService) IssueInvoice(ctx context.Context, idempotencyKey string, request *dto.IssueInvoiceRequest) (*domain.Invoice, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	return s.idempotency.Run(ctx, idempotencyKey, request, func(ctx context.Context) (*domain.Invoice, error) {
		return s.processInvoice(ctx, request)
	})
}

func (s *InvoiceService) buildRequest(ctx context.Context, request *dto.IssueInvoiceRequest) (*domain.InvoiceRequest, error) {
	client, err := s.clientRepository.GetByID(ctx, request.ClientID)
	if err != nil {
		return nil, serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "client not found")
	}

	invoiceRequest := domain.NewInvoiceRequest(client.Snapshot())
	for _, item := range request.Items {
		product, err := s.productRepository.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "product not found")
		}
		invoiceRequest.Add(domain.NewRequestItem(product.GenerateSnapshot(), item.Quantity, product.Price.Multiply(item.Quantity)))
	}
	return invoiceRequest, nil
}

func (s *InvoiceService) processInvoice(ctx context.Context, request *dto.IssueInvoiceRequest) (*domain.Invoice, error) {
	invoiceRequest, err := s.buildRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	invoice, err := s.bookKeeper.Issuance(ctx, invoiceRequest, s.taxPolicy)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.invoiceRepository.Create(txCtx, invoice)
	})
	if err != nil {
		logger.Error(ctx, "transaction: create invoice failed", err, map[string]any{
			"client_id": request.ClientID,
			"number":    invoice.Number,
		})
		return nil, err
	}

	if err := s.invoiceCache.Set(ctx, s.getCacheKey(invoice.ID), invoice, s.cacheTTL); err != nil {
		logger.Error(ctx, "cache: set invoice failed", err, map[string]any{
			"invoice_id": invoice.ID,
		})
	}

	logger.Info(ctx, "Invoice issued", map[string]any{
		"invoice_id": invoice.ID,
		"number":     invoice.Number,
		"net":        invoice.Net.String(),
		"tax":        invoice.Tax.String(),
	})
	return invoice, nil
}
