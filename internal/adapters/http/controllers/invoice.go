package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/sales/internal/adapters/http/handlers"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/dto"
	"github.com/rafaelleal24/sales/internal/core/service"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
)

type InvoiceLineResponse struct {
	Product        ProductSnapshotResponse `json:"product"`
	Quantity       int                     `json:"quantity"`
	TotalCost      int64                   `json:"total_cost"`
	TaxAmount      int64                   `json:"tax_amount"`
	TaxDescription string                  `json:"tax_description"`
}

type InvoiceResponse struct {
	ID       string                `json:"id"`
	Number   string                `json:"number"`
	Client   ClientDataResponse    `json:"client"`
	Lines    []InvoiceLineResponse `json:"lines"`
	Net      int64                 `json:"net"`
	Tax      int64                 `json:"tax"`
	Gross    int64                 `json:"gross"`
	IssuedAt time.Time             `json:"issued_at"`
}

func NewInvoiceResponse(invoice *domain.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(invoice.Lines))
	for i, line := range invoice.Lines {
		lines[i] = InvoiceLineResponse{
			Product:        NewProductSnapshotResponse(line.Item.Product),
			Quantity:       line.Item.Quantity,
			TotalCost:      line.Item.TotalCost.Cents(),
			TaxAmount:      line.Tax.Amount.Cents(),
			TaxDescription: line.Tax.Description,
		}
	}
	return InvoiceResponse{
		ID:       string(invoice.ID),
		Number:   invoice.Number,
		Client:   ClientDataResponse{ID: string(invoice.Client.ID), Name: invoice.Client.Name},
		Lines:    lines,
		Net:      invoice.Net.Cents(),
		Tax:      invoice.Tax.Cents(),
		Gross:    invoice.Gross().Cents(),
		IssuedAt: invoice.IssuedAt,
	}
}

type InvoiceController struct {
	invoiceService *service.InvoiceService
}

func NewInvoiceController(invoiceService *service.InvoiceService) *InvoiceController {
	return &InvoiceController{invoiceService: invoiceService}
}

// IssueInvoice godoc
// @Summary     Issue an invoice
// @Description Prices and taxes the requested items for a client, with idempotency support
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                  false "Idempotency key"
// @Param       request         body     dto.IssueInvoiceRequest true  "Invoice request"
// @Success     201             {object} InvoiceResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/invoices [post]
func (ic *InvoiceController) IssueInvoice(c *gin.Context) {
	var request dto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	invoice, err := ic.invoiceService.IssueInvoice(c.Request.Context(), idempotencyKey, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewInvoiceResponse(invoice))
}

// GetInvoiceByID godoc
// @Summary     Get invoice by ID
// @Tags        invoices
// @Produce     json
// @Param       id  path     string true "Invoice ID"
// @Success     200 {object} InvoiceResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/invoices/{id} [get]
func (ic *InvoiceController) GetInvoiceByID(c *gin.Context) {
	id, err := pathID(c, "invoice")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	invoice, err := ic.invoiceService.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewInvoiceResponse(invoice))
}
