package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/uberdeluxe/passenger-service/internal/pkg/logger"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	"github.com/uberdeluxe/passenger-service/internal/utils"
	"github.com/uberdeluxe/passenger-service/services/passengers"
)

// PassengerHandler handles HTTP requests for passenger operations
type PassengerHandler struct {
	passengerUC passengers.PassengerUC
}

// NewPassengerHandler creates a new passenger handler
func NewPassengerHandler(passengerUC passengers.PassengerUC) *PassengerHandler {
	return &PassengerHandler{
		passengerUC: passengerUC,
	}
}

// RegisterPassenger handles passenger registration requests
func (h *PassengerHandler) RegisterPassenger(c echo.Context) error {
	var req models.RegisterPassengerRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for passenger registration",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.passengerUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to register passenger",
			logger.String("email", req.Email),
			logger.Err(err))
		return mapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Passenger registered successfully", resp)
}

// GetPassenger handles passenger retrieval requests
func (h *PassengerHandler) GetPassenger(c echo.Context) error {
	id, err := parsePassengerID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid passenger ID")
	}

	passenger, err := h.passengerUC.GetPassengerByID(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger retrieved successfully", passenger)
}

// UpdatePassenger applies a JSON Patch document to a passenger record
func (h *PassengerHandler) UpdatePassenger(c echo.Context) error {
	id, err := parsePassengerID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid passenger ID")
	}

	patchDoc, err := io.ReadAll(c.Request().Body)
	if err != nil || len(patchDoc) == 0 {
		return utils.BadRequestResponse(c, "Invalid patch document")
	}

	passenger, err := h.passengerUC.UpdatePassenger(c.Request().Context(), id, json.RawMessage(patchDoc))
	if err != nil {
		logger.Warn("Failed to update passenger",
			logger.Int64("passenger_id", id),
			logger.Err(err))
		return mapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger updated successfully", passenger)
}

// ListPassengers returns one page of passengers
func (h *PassengerHandler) ListPassengers(c echo.Context) error {
	pageNumber := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid page number")
		}
		pageNumber = parsed
	}

	page, err := h.passengerUC.ListPassengers(c.Request().Context(), pageNumber)
	if err != nil {
		return mapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passengers retrieved successfully", page)
}

// DeletePassenger removes a passenger by id
func (h *PassengerHandler) DeletePassenger(c echo.Context) error {
	id, err := parsePassengerID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid passenger ID")
	}

	if err := h.passengerUC.DeletePassenger(c.Request().Context(), id); err != nil {
		return mapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger deleted successfully", nil)
}

// BookRide produces a fare quote for a booking request
func (h *PassengerHandler) BookRide(c echo.Context) error {
	var req models.BookRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	quote, err := h.passengerUC.BookRide(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to produce ride quote",
			logger.Int64("passenger_id", req.PassengerID),
			logger.Err(err))
		return mapDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride quote produced successfully", quote)
}

func parsePassengerID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// mapDomainError translates domain failures into HTTP responses. Business-rule
// failures surface as client errors; transport and storage failures surface as
// service-level errors.
func mapDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, passengers.ErrPassengerNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, passengers.ErrPatchApply):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, passengers.ErrInvalidPatchedRecord),
		errors.Is(err, passengers.ErrUnprocessableResponse):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, passengers.ErrProviderUnavailable):
		return utils.ServiceUnavailableResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
