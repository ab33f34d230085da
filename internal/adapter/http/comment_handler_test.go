package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	commentDomain "dealtrack/internal/domain/comment"
	dealDomain "dealtrack/internal/domain/deal"
	"dealtrack/internal/testutil/commentmock"
	"dealtrack/internal/testutil/dealmock"
	uc "dealtrack/internal/usecase/comment"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// dealExists backs the deal-must-exist check with a single stored deal.
func dealExists(id string) *dealmock.Repo {
	return &dealmock.Repo{
		GetByIDFn: func(ctx context.Context, got string) (*dealDomain.Deal, error) {
			if got == id {
				return &dealDomain.Deal{ID: id}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestListComments_Success(t *testing.T) {
	e := newEchoWithValidator()

	comments := &commentmock.Repo{
		ListByDealIDFn: func(ctx context.Context, dealID string) ([]commentDomain.Comment, error) {
			return []commentDomain.Comment{
				{ID: "c-1", DealID: dealID, Content: "called the broker"},
				{ID: "c-2", DealID: dealID, Content: "LOI draft sent"},
			}, nil
		},
	}
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), comments))

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/deals/d-1/comments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("d-1")

	if err := h.ListComments(c); err != nil {
		t.Fatalf("ListComments error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []commentDomain.Comment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c-1" {
		t.Fatalf("unexpected comments: %+v", got)
	}
}

func TestListComments_EmptyIsJSONArray(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), &commentmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/deals/d-1/comments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("d-1")

	if err := h.ListComments(c); err != nil {
		t.Fatalf("ListComments error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("empty list must serialize as [], got %q", rec.Body.String())
	}
}

func TestListComments_MissingDeal(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), &commentmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/deals/ghost/comments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.ListComments(c); err != nil {
		t.Fatalf("ListComments error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateComment_Success(t *testing.T) {
	e := newEchoWithValidator()

	var created *commentDomain.Comment
	comments := &commentmock.Repo{
		CreateFn: func(ctx context.Context, cm *commentDomain.Comment) error { created = cm; return nil },
	}
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), comments))

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/deals/d-1/comments",
		mustJSON(map[string]string{"content": "  site visit booked  "}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("d-1")

	if err := h.CreateComment(c); err != nil {
		t.Fatalf("CreateComment error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatalf("repository Create was not called")
	}
	if created.Content != "site visit booked" {
		t.Fatalf("content not trimmed: %q", created.Content)
	}
	if created.DealID != "d-1" || created.ID == "" {
		t.Fatalf("unexpected comment: %+v", created)
	}
}

func TestCreateComment_MissingContent(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), &commentmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/deals/d-1/comments", mustJSON(map[string]string{}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("d-1")

	if err := h.CreateComment(c); err != nil {
		t.Fatalf("CreateComment error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "Content", "is required") {
		t.Fatalf("missing Content detail: %+v", er.Details)
	}
}

func TestCreateComment_WhitespaceContent(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), &commentmock.Repo{}))

	// Passes the required tag but trims to nothing in the usecase.
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/deals/d-1/comments",
		mustJSON(map[string]string{"content": "   "}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("d-1")

	if err := h.CreateComment(c); err != nil {
		t.Fatalf("CreateComment error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateComment_MissingDeal(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), &commentmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/deals/ghost/comments",
		mustJSON(map[string]string{"content": "note"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.CreateComment(c); err != nil {
		t.Fatalf("CreateComment error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateComment_Success(t *testing.T) {
	e := newEchoWithValidator()

	comments := &commentmock.Repo{
		GetByIDFn: func(ctx context.Context, id string) (*commentDomain.Comment, error) {
			return &commentDomain.Comment{ID: id, DealID: "d-1", Content: "old"}, nil
		},
		SaveFn: func(ctx context.Context, cm *commentDomain.Comment) error { return nil },
	}
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), comments))

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/comments/c-1",
		mustJSON(map[string]string{"content": "revised"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c-1")

	if err := h.UpdateComment(c); err != nil {
		t.Fatalf("UpdateComment error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got commentDomain.Comment
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Content != "revised" {
		t.Fatalf("content = %q, want revised", got.Content)
	}
}

func TestUpdateComment_NotFound(t *testing.T) {
	e := newEchoWithValidator()

	comments := &commentmock.Repo{
		GetByIDFn: func(ctx context.Context, id string) (*commentDomain.Comment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), comments))

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/comments/ghost",
		mustJSON(map[string]string{"content": "revised"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.UpdateComment(c); err != nil {
		t.Fatalf("UpdateComment error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteComment_NoContent(t *testing.T) {
	e := newEchoWithValidator()

	deleted := ""
	comments := &commentmock.Repo{
		DeleteFn: func(ctx context.Context, id string) error { deleted = id; return nil },
	}
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), comments))

	req := httptest.NewRequest(stdhttp.MethodDelete, "/api/comments/c-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c-1")

	if err := h.DeleteComment(c); err != nil {
		t.Fatalf("DeleteComment error: %v", err)
	}
	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if deleted != "c-1" {
		t.Fatalf("deleted id = %q, want c-1", deleted)
	}
}

func TestDeleteComment_NotFound(t *testing.T) {
	e := newEchoWithValidator()

	comments := &commentmock.Repo{
		DeleteFn: func(ctx context.Context, id string) error { return commentDomain.ErrNotFound },
	}
	h := NewCommentHandler(uc.NewUsecase(dealExists("d-1"), comments))

	req := httptest.NewRequest(stdhttp.MethodDelete, "/api/comments/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.DeleteComment(c); err != nil {
		t.Fatalf("DeleteComment error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
