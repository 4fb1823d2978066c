package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/sales/internal/adapters/http/handlers"
	"github.com/rafaelleal24/sales/internal/core/domain"
	"github.com/rafaelleal24/sales/internal/core/dto"
	"github.com/rafaelleal24/sales/internal/core/service"
	"github.com/rafaelleal24/sales/internal/core/serviceerrors"
)

type ReservationItemResponse struct {
	Product  ProductSnapshotResponse `json:"product"`
	Quantity int                     `json:"quantity"`
}

type ReservationResponse struct {
	ID        string                    `json:"id"`
	Status    string                    `json:"status"`
	Client    ClientDataResponse        `json:"client"`
	Items     []ReservationItemResponse `json:"items"`
	CreatedAt time.Time                 `json:"created_at"`
}

func NewReservationResponse(reservation *domain.Reservation) ReservationResponse {
	reservationItems := reservation.Items()
	items := make([]ReservationItemResponse, len(reservationItems))
	for i, item := range reservationItems {
		items[i] = ReservationItemResponse{
			Product:  NewProductSnapshotResponse(item.Product),
			Quantity: item.Quantity,
		}
	}
	return ReservationResponse{
		ID:        string(reservation.ID),
		Status:    string(reservation.Status()),
		Client:    ClientDataResponse{ID: string(reservation.Client.ID), Name: reservation.Client.Name},
		Items:     items,
		CreatedAt: reservation.CreatedAt,
	}
}

type ReservationController struct {
	reservationService *service.ReservationService
}

func NewReservationController(reservationService *service.ReservationService) *ReservationController {
	return &ReservationController{reservationService: reservationService}
}

// OpenReservation godoc
// @Summary     Open a reservation
// @Description Opens an empty reservation for a client
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       request body     dto.OpenReservationRequest true "Reservation owner"
// @Success     201     {object} ReservationResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/reservations [post]
func (rc *ReservationController) OpenReservation(c *gin.Context) {
	var request dto.OpenReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	reservation, err := rc.reservationService.OpenReservation(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewReservationResponse(reservation))
}

// GetReservationByID godoc
// @Summary     Get reservation by ID
// @Tags        reservations
// @Produce     json
// @Param       id  path     string true "Reservation ID"
// @Success     200 {object} ReservationResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/reservations/{id} [get]
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := pathID(c, "reservation")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	reservation, err := rc.reservationService.GetReservationByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewReservationResponse(reservation))
}

// AddProduct godoc
// @Summary     Add a product to a reservation
// @Description Adds a product snapshot to an opened reservation. An unavailable product is
// @Description replaced by an equivalent one suggested for the acting client (X-Client-ID).
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       id          path     string                true  "Reservation ID"
// @Param       X-Client-ID header   string                false "Acting client"
// @Param       request     body     dto.AddProductRequest true  "Product and quantity"
// @Success     200         {object} ReservationResponse
// @Failure     400         {object} handlers.ErrorResponse
// @Failure     404         {object} handlers.ErrorResponse
// @Failure     422         {object} handlers.ErrorResponse
// @Failure     429         {object} handlers.ErrorResponse
// @Failure     500         {object} handlers.ErrorResponse
// @Router      /api/v1/reservations/{id}/items [post]
func (rc *ReservationController) AddProduct(c *gin.Context) {
	id, err := pathID(c, "reservation")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	var request dto.AddProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	ctx := c.Request.Context()
	cmd := service.AddProductCommand{ReservationID: id, ProductID: request.ProductID, Quantity: request.Quantity}
	if err := rc.reservationService.AddProduct(ctx, cmd); err != nil {
		handlers.HandleError(c, err)
		return
	}

	reservation, err := rc.reservationService.GetReservationByID(ctx, id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewReservationResponse(reservation))
}

// ConfirmReservation godoc
// @Summary     Confirm a reservation
// @Tags        reservations
// @Produce     json
// @Param       id  path     string true "Reservation ID"
// @Success     200 {object} ReservationResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     422 {object} handlers.ErrorResponse
// @Router      /api/v1/reservations/{id}/confirm [post]
func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	rc.changeStatus(c, rc.reservationService.ConfirmReservation)
}

// CancelReservation godoc
// @Summary     Cancel a reservation
// @Tags        reservations
// @Produce     json
// @Param       id  path     string true "Reservation ID"
// @Success     200 {object} ReservationResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     422 {object} handlers.ErrorResponse
// @Router      /api/v1/reservations/{id}/cancel [post]
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	rc.changeStatus(c, rc.reservationService.CancelReservation)
}

func (rc *ReservationController) changeStatus(c *gin.Context, change func(ctx context.Context, id domain.ID) (*domain.Reservation, error)) {
	id, err := pathID(c, "reservation")
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	reservation, err := change(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewReservationResponse(reservation))
}
