package service

import (
	"context"
	"errors"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	"github.com/rafaelleal24/sales/internal/core/validation"
)

type AddProductCommand struct {
	ReservationID domain.ID `json:"reservation_id" validate:"required,len=24"`
	ProductID     domain.ID `json:"product_id" validate:"required,len=24"`
	Quantity      int       `json:"quantity" validate:"gt=0"`
}

// AddProductCommandHandler adds a product to an opened reservation. When the product is
// no longer available the acting client gets an equivalent product instead.
type AddProductCommandHandler struct {
	reservationRepository port.ReservationPort
	productRepository     port.ProductPort
	suggestionService     port.SuggestionPort
	clientRepository      port.ClientPort
	systemContext         port.SystemContext
}

func NewAddProductCommandHandler(
	reservationRepository port.ReservationPort,
	productRepository port.ProductPort,
	suggestionService port.SuggestionPort,
	clientRepository port.ClientPort,
	systemContext port.SystemContext,
) *AddProductCommandHandler {
	return &AddProductCommandHandler{
		reservationRepository: reservationRepository,
		productRepository:     productRepository,
		suggestionService:     suggestionService,
		clientRepository:      clientRepository,
		systemContext:         systemContext,
	}
}

func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := validation.Validate(cmd); err != nil {
		return err
	}

	reservation, err := h.reservationRepository.Load(ctx, cmd.ReservationID)
	if err != nil {
		return serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "reservation not found")
	}

	product, err := h.productRepository.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "product not found")
	}

	if !product.Available {
		product, err = h.suggestSubstitute(ctx, product)
		if err != nil {
			return err
		}
	}

	if err := reservation.Add(product.GenerateSnapshot(), cmd.Quantity); err != nil {
		if errors.Is(err, domain.ErrReservationNotOpened) || errors.Is(err, domain.ErrInvalidQuantity) {
			return serviceerrors.NewUnprocessableEntityError(err.Error())
		}
		return err
	}

	if err := h.reservationRepository.Save(ctx, reservation); err != nil {
		logger.Error(ctx, "reservation: save failed", err, map[string]any{
			"reservation_id": reservation.ID,
			"product_id":     product.ID,
		})
		return err
	}

	logger.Info(ctx, "Product added to reservation", map[string]any{
		"reservation_id":       reservation.ID,
		"requested_product_id": cmd.ProductID,
		"product_id":           product.ID,
		"quantity":             cmd.Quantity,
	})
	return nil
}

func (h *AddProductCommandHandler) suggestSubstitute(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	user, err := h.systemContext.SystemUser(ctx)
	if err != nil {
		return nil, err
	}

	client, err := h.clientRepository.GetByID(ctx, user.ClientID)
	if err != nil {
		return nil, serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "client not found")
	}

	substitute, err := h.suggestionService.SuggestEquivalent(ctx, product, client)
	if err != nil {
		var svcErr *serviceerrors.ServiceError
		if errors.As(err, &svcErr) {
			return nil, err
		}
		return nil, serviceerrors.NewPolicyError("suggestion failed", err)
	}
	if substitute == nil {
		return nil, serviceerrors.NewPolicyError("no equivalent product available", nil)
	}

	logger.Info(ctx, "reservation: product unavailable, substitute suggested", map[string]any{
		"product_id":    product.ID,
		"substitute_id": substitute.ID,
		"client_id":     client.ID,
	})
	return substitute, nil
}
