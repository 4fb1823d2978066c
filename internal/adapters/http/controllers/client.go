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

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        string(client.ID),
		Name:      client.Name,
		CreatedAt: client.CreatedAt,
	}
}

type ClientController struct {
	clientService *service.ClientService
}

func NewClientController(clientService *service.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary     Create a client
// @Description Registers a new client
// @Tags        clients
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateClientRequest true "Client data"
// @Success     201     {object} ClientResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var request dto.CreateClientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	client, err := cc.clientService.CreateClient(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewClientResponse(client))
}

// GetClientByID godoc
// @Summary     Get client by ID
// @Tags        clients
// @Produce     json
// @Param       id  path     string true "Client ID"
// @Success     200 {object} ClientResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/clients/{id} [get]
func (cc *ClientController) GetClientByID(c *gin.Context) {
	id, err := pathID(c, "client")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	client, err := cc.clientService.GetClientByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewClientResponse(client))
}
