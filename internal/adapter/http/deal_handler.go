package http

import (
	"errors"
	"net/http"

	dealDomain "dealtrack/internal/domain/deal"
	"dealtrack/internal/usecase/deal"

	"github.com/labstack/echo/v4"
)

type DealHandler struct{ uc *deal.Usecase }

func NewDealHandler(uc *deal.Usecase) *DealHandler { return &DealHandler{uc: uc} }

type createDealReq struct {
	Address     string `json:"address"     validate:"required"`
	City        string `json:"city"        validate:"required"`
	State       string `json:"state"       validate:"required"`
	Country     string `json:"country"     validate:"required"`
	Broker      string `json:"broker"      validate:"required"`
	BDD         string `json:"bdd"`
	DealNumber  int    `json:"dealNumber"  validate:"omitempty,gte=1"`
	Status      string `json:"status"      validate:"required,stage"`
	Brand       string `json:"brand"       validate:"required,brand"`
	NCOExisting string `json:"ncoExisting" validate:"required,ncoexist"`
	DealType    string `json:"dealType"    validate:"required,dealtype"`
	Notes       string `json:"notes"`
	RSF         string `json:"rsf"`
	Owner       string `json:"owner"       validate:"required"`
	// Optional; the server synthesizes one from Status when omitted.
	WeeklyHistory dealDomain.WeeklyHistory `json:"weeklyHistory"`
}

type updateDealReq struct {
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	Broker      *string `json:"broker"`
	BDD         *string `json:"bdd"`
	DealNumber  *int    `json:"dealNumber"  validate:"omitempty,gte=1"`
	Status      *string `json:"status"      validate:"omitempty,stage"`
	Brand       *string `json:"brand"       validate:"omitempty,brand"`
	NCOExisting *string `json:"ncoExisting" validate:"omitempty,ncoexist"`
	DealType    *string `json:"dealType"    validate:"omitempty,dealtype"`
	Notes       *string `json:"notes"`
	RSF         *string `json:"rsf"`
	Owner       *string `json:"owner"`

	WeeklyHistory *dealDomain.WeeklyHistory `json:"weeklyHistory"`
}

// ListDeals never fails: store trouble degrades to the CSV fallback inside
// the loader and, at worst, an empty collection.
func (h *DealHandler) ListDeals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.List(c.Request().Context()))
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	d, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, dealDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DealHandler) CreateDeal(c echo.Context) error {
	var req createDealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	d, err := h.uc.Create(c.Request().Context(), deal.CreateDealInput(req))
	if err != nil {
		if errors.Is(err, deal.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		// Write-path failures propagate verbatim to the initiating user.
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DealHandler) UpdateDeal(c echo.Context) error {
	var req updateDealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	d, err := h.uc.Update(c.Request().Context(), c.Param("id"), deal.UpdateDealInput(req))
	if err != nil {
		if errors.Is(err, dealDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DealHandler) DeleteDeal(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, dealDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
