package http

import (
	"errors"
	"net/http"

	commentDomain "dealtrack/internal/domain/comment"
	dealDomain "dealtrack/internal/domain/deal"
	"dealtrack/internal/usecase/comment"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct{ uc *comment.Usecase }

func NewCommentHandler(uc *comment.Usecase) *CommentHandler { return &CommentHandler{uc: uc} }

type commentReq struct {
	Content string `json:"content" validate:"required"`
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	out, err := h.uc.ListForDeal(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, dealDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		out = []commentDomain.Comment{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.Create(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, dealDomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, comment.ErrEmptyContent):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CommentHandler) UpdateComment(c echo.Context) error {
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, commentDomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, comment.ErrEmptyContent):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommentHandler) DeleteComment(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, commentDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
