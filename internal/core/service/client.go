package service

import (
	"context"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/dto"
	"github.com/rafaelleal24/sales/internal/core/logger"
	"github.com/rafaelleal24/sales/internal/core/port"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	"github.com/rafaelleal24/sales/internal/core/validation"
)

type ClientService struct {
	clientRepository port.ClientPort
}

func NewClientService(clientRepository port.ClientPort) *ClientService {
	return &ClientService{clientRepository: clientRepository}
}

func (s *ClientService) CreateClient(ctx context.Context, request *dto.CreateClientRequest) (*domain.Client, error) {
	if err := validation.Validate(request); err != nil {
		return nil, err
	}

	client := domain.NewClient(request.Name)
	if err := s.clientRepository.Create(ctx, client); err != nil {
		logger.Error(ctx, "client: create failed", err, map[string]any{
			"name": request.Name,
		})
		return nil, err
	}

	logger.Info(ctx, "Client created", map[string]any{"client_id": client.ID})
	return client, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, id domain.ID) (*domain.Client, error) {
	client, err := s.clientRepository.GetByID(ctx, id)
	if err != nil {
		return nil, serviceerrors.WithMessage(err, serviceerrors.KindNotFound, "client not found")
	}
	return client, nil
}
