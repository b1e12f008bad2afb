package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"journal-api/internal/common"
)

type entryRequest struct {
	Date    string `json:"date" query:"date"`
	Content string `json:"content"`
}

func (s *Server) fetchAll(c echo.Context) error {
	ctx := c.Request().Context()

	owner, ok := ownerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token not provided"})
	}

	stored, err := s.entries.FetchAll(ctx, owner)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No entries present"})
		}
		return s.internalError(c, err)
	}

	result := make([]EntryPayload, 0, len(stored))
	for _, e := range stored {
		content, err := s.cipher.Decrypt(e.Content)
		if err != nil {
			return s.internalError(c, err)
		}
		result = append(result, EntryPayload{Date: e.Date, Content: content})
	}

	return c.JSON(http.StatusOK, EntriesResponse{Entries: result})
}

func (s *Server) fetchOne(c echo.Context) error {
	ctx := c.Request().Context()

	owner, ok := ownerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token not provided"})
	}

	req := &entryRequest{}
	if err := c.Bind(req); err != nil || req.Date == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide the entry date"})
	}

	entry, err := s.entries.FetchOne(ctx, owner, req.Date)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No such entry present"})
		}
		return s.internalError(c, err)
	}

	content, err := s.cipher.Decrypt(entry.Content)
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, EntryResponse{Entry: EntryPayload{Date: entry.Date, Content: content}})
}

func (s *Server) saveEntry(c echo.Context) error {
	ctx := c.Request().Context()

	owner, ok := ownerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token not provided"})
	}

	req := &entryRequest{}
	if err := c.Bind(req); err != nil || req.Date == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide the entry date and content"})
	}

	ciphertext, err := s.cipher.Encrypt(req.Content)
	if err != nil {
		return s.internalError(c, err)
	}

	if err := s.entries.Save(ctx, owner, req.Date, ciphertext); err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "Entry saved successfully"})
}

func (s *Server) updateEntry(c echo.Context) error {
	ctx := c.Request().Context()

	owner, ok := ownerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token not provided"})
	}

	req := &entryRequest{}
	if err := c.Bind(req); err != nil || req.Date == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide the entry date and content"})
	}

	ciphertext, err := s.cipher.Encrypt(req.Content)
	if err != nil {
		return s.internalError(c, err)
	}

	if err := s.entries.Update(ctx, owner, req.Date, ciphertext); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No such entry present"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Entry updated successfully"})
}

func (s *Server) deleteEntry(c echo.Context) error {
	ctx := c.Request().Context()

	owner, ok := ownerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token not provided"})
	}

	req := &entryRequest{}
	if err := c.Bind(req); err != nil || req.Date == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide the entry date"})
	}

	if err := s.entries.Delete(ctx, owner, req.Date); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No such entry present"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Entry deleted successfully"})
}
