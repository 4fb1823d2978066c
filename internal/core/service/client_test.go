package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/dto"
	"github.com/rafaelleal24/sales/internal/core/port/mock"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupClientService(t *testing.T) (*ClientService, *mock.MockClientPort) {
	ctrl := gomock.NewController(t)
	clientRepo := mock.NewMockClientPort(ctrl)
	return NewClientService(clientRepo), clientRepo
}

func TestClientService_CreateClient(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, clientRepo := setupClientService(t)

		clientRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Client) error {
				c.ID = testClientID
				return nil
			})

		client, err := svc.CreateClient(context.Background(), &dto.CreateClientRequest{Name: "Jan Kowalski"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if client.ID != testClientID || client.Name != "Jan Kowalski" {
			t.Fatalf("unexpected client %+v", client)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		svc, _ := setupClientService(t)

		_, err := svc.CreateClient(context.Background(), &dto.CreateClientRequest{})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		svc, clientRepo := setupClientService(t)

		clientRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		if _, err := svc.CreateClient(context.Background(), &dto.CreateClientRequest{Name: "Jan"}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestClientService_GetClientByID(t *testing.T) {
	svc, clientRepo := setupClientService(t)

	clientRepo.EXPECT().
		GetByID(gomock.Any(), testClientID).
		Return(nil, serviceerrors.NewNotFoundError("document not found"))

	_, err := svc.GetClientByID(context.Background(), testClientID)
	if err == nil || err.Error() != "client not found" {
		t.Fatalf("expected 'client not found', got %v", err)
	}
}
