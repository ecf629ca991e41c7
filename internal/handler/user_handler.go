package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"stonks/internal/auth"
	errs "stonks/internal/errors"
	"stonks/internal/model"
	"stonks/internal/service"
)

// UserHandler bundles the HTTP handlers for the users API.
type UserHandler struct {
	svc     service.UserService
	secrets auth.Verifier
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, secrets auth.Verifier) *UserHandler {
	return &UserHandler{svc: svc, secrets: secrets}
}

// ListUsers returns every record not marked deleted as a JSON array, in
// store iteration order. An empty result renders as [].
func (h *UserHandler) ListUsers(c echo.Context) error {
	docs, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	payload, err := model.EncodeDocuments(docs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetUser returns the record matching uid, or the literal null if absent.
func (h *UserHandler) GetUser(c echo.Context) error {
	doc, err := h.svc.GetUser(c.Request().Context(), c.Param("uid"))
	if errors.Is(err, errs.ErrUserNotFound) {
		return c.JSONBlob(http.StatusOK, []byte("null"))
	}
	if err != nil {
		return writeError(c, err)
	}
	payload, err := model.EncodeDocument(doc)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// UserExists responds true or false depending on whether a record with
// the exact uid exists.
func (h *UserHandler) UserExists(c echo.Context) error {
	exists, err := h.svc.UserExists(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, exists)
}

// CreateUser validates the path secret, then stores the request body as a
// new document. Any well-formed JSON object is accepted verbatim.
func (h *UserHandler) CreateUser(c echo.Context) error {
	if !h.secrets.Verify(c.Param("pword")) {
		return writeError(c, errs.ErrInvalidSecret)
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return writeError(c, err)
	}
	doc, err := model.DecodeDocument(body)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.svc.CreateUser(c.Request().Context(), doc); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

// DeleteUser validates the path secret, then hard-deletes the record
// matching uid. Deleting a missing uid still reports success.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if !h.secrets.Verify(c.Param("pword")) {
		return writeError(c, errs.ErrInvalidSecret)
	}
	if err := h.svc.DeleteUser(c.Request().Context(), c.Param("uid")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

func writeError(c echo.Context, err error) error {
	he := errs.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
