package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ticketing/internal/dto"
	"ticketing/internal/models"
	"ticketing/internal/repository"
	"ticketing/internal/service"

	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateEvent)
	g.GET("", h.ListEvents)
	g.GET("/:id", h.GetEvent)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event := &models.Event{
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		Capacity:             req.Capacity,
		Price:                req.Price,
		DynamicPricingFactor: req.DynamicPricingFactor,
		Organizer:            req.Organizer,
		Category:             req.Category,
		ImageURL:             req.ImageURL,
		Status:               models.EventStatus(req.Status),
	}

	if err := h.svc.CreateEvent(c.Request().Context(), event); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTransient):
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	event, err := h.svc.GetEvent(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	filter := repository.EventFilter{Category: c.QueryParam("category")}
	if s := c.QueryParam("status"); s != "" {
		status := models.EventStatus(s)
		filter.Status = &status
	}

	events, err := h.svc.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := service.UpdateEventInput{
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		Capacity:             req.Capacity,
		Price:                req.Price,
		DynamicPricingFactor: req.DynamicPricingFactor,
		Organizer:            req.Organizer,
		Category:             req.Category,
		ImageURL:             req.ImageURL,
	}
	if req.Status != nil {
		status := models.EventStatus(*req.Status)
		in.Status = &status
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), uint(id), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTransient):
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	if err := h.svc.DeleteEvent(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
