package service

import (
	"context"
	"errors"
	"time"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/dto"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	"github.com/rafaelleal24/sales/internal/core/validation"
)

type ReservationService struct {
	reservationRepository port.ReservationPort
	clientRepository      port.ClientPort
	addProductHandler     *AddProductCommandHandler
	txManager             port.TransactionManager
}

func NewReservationService(
	reservationRepository port.ReservationPort,
	clientRepository port.ClientPort,
	addProductHandler *AddProductCommandHandler,
	txManager port.TransactionManager,
) *ReservationService {
	return &ReservationService{
		reservationRepository: reservationRepository,
		clientRepository:      clientRepository,
		addProductHandler:     addProductHandler,
		txManager:             txManager,
	}
}

func (s *ReservationService) OpenReservation(ctx context.Context, request *dto.OpenReservationRequest) (*domain.Reservation, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	client, err := s.clientRepository.GetByID(ctx, request.ClientID)
	if err != nil {
		return nil, serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "client not found")
	}

	reservation := domain.NewReservation(client.Snapshot(), time.Now().UTC())
	if err := s.reservationRepository.Create(ctx, reservation); err != nil {
		logger.Error(ctx, "reservation: create failed", err, map[string]any{
			"client_id": client.ID,
		})
		return nil, err
	}

	logger.Info(ctx, "Reservation opened", map[string]any{
		"reservation_id": reservation.ID,
		"client_id":      client.ID,
	})
	return reservation, nil
}

func (s *ReservationService) GetReservationByID(ctx context.Context, id domain.ID) (*domain.Reservation, error) {
	reservation, err := s.reservationRepository.Load(ctx, id)
	if err != nil {
		return nil, serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "reservation not found")
	}
	return reservation, nil
}

func (s *ReservationService) AddProduct(ctx context.Context, cmd AddProductCommand) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.addProductHandler.Handle(txCtx, cmd)
	})
}

func (s *ReservationService) ConfirmReservation(ctx context.Context, id domain.ID) (*domain.Reservation, error) {
	return s.changeStatus(ctx, id, (*domain.Reservation).Confirm)
}

func (s *ReservationService) CancelReservation(ctx context.Context, id domain.ID) (*domain.Reservation, error) {
	return s.changeStatus(ctx, id, (*domain.Reservation).Cancel)
}

func (s *ReservationService) changeStatus(ctx context.Context, id domain.ID, transition func(*domain.Reservation) error) (*domain.Reservation, error) {
	var reservation *domain.Reservation
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		loaded, err := s.reservationRepository.Load(txCtx, id)
		if err != nil {
			return serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "reservation not found")
		}

		oldStatus := loaded.Status()
		if err := transition(loaded); err != nil {
			if errors.Is(err, domain.ErrInvalidStatusTransition) {
				return serviceerrors.NewUnprocessableEntityError("reservation is not opened")
			}
			return err
		}

		if err := s.reservationRepository.Save(txCtx, loaded); err != nil {
			return err
		}

		logger.Info(ctx, "Reservation status updated", map[string]any{
			"reservation_id": id,
			"old_status":     oldStatus,
			"new_status":     loaded.Status(),
		})
		reservation = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}
