package book

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"booktracker/internal/httpx"
)

const (
	msgRequired = "Both title and author are required"
	msgAdded    = "Book added successfully"
)

type HTTPHandler struct {
	store *Store
}

func NewHTTPHandler(store *Store) *HTTPHandler {
	return &HTTPHandler{store: store}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/books", h.List)
	mux.HandleFunc("POST /v1/books", h.Add)
	mux.HandleFunc("GET /v1/books/view", h.View)
	mux.HandleFunc("PATCH /v1/books/{id}/read", h.ToggleRead)
	mux.HandleFunc("DELETE /v1/books/{id}", h.Delete)
}

type addResponse struct {
	Book    Book   `json:"book"`
	Message string `json:"message"`
}

// @Summary List books
// @Tags books
// @Produce json
// @Router /v1/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books := h.store.Collection()
	httpx.JSONSuccessWithRequest(r, w, books, map[string]interface{}{
		"total": len(books),
	})
}

// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Router /v1/books [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req NewBook
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	books, err := h.store.Add(r.Context(), req.Title, req.Author)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			details := make([]httpx.ErrorDetail, len(verr.Fields))
			for i, f := range verr.Fields {
				details[i] = httpx.ErrorDetail{Field: f.Field, Message: f.Message}
			}
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", msgRequired, details)
			return
		}
		h.persistFailed(w, r, err)
		return
	}

	httpx.JSONSuccessCreatedWithRequest(r, w, addResponse{
		Book:    books[len(books)-1],
		Message: msgAdded,
	})
}

// @Summary Toggle the read flag of a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Router /v1/books/{id}/read [patch]
func (h *HTTPHandler) ToggleRead(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.ToggleRead(r.Context(), r.PathValue("id"))
	if err != nil {
		h.persistFailed(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, books, nil)
}

// @Summary Delete a book
// @Tags books
// @Param id path string true "Book ID"
// @Router /v1/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.persistFailed(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// @Summary Filtered view of the collection
// @Tags books
// @Produce json
// @Param filter query string false "all, read or unread" default(all)
// @Param q query string false "Search title or author"
// @Router /v1/books/view [get]
func (h *HTTPHandler) View(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	mode, err := ParseFilterMode(query.Get("filter"))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), []httpx.ErrorDetail{
			{Field: "filter", Message: "filter must be one of all, read, unread"},
		})
		return
	}

	httpx.JSONSuccessWithRequest(r, w, View(h.store.Collection(), mode, query.Get("q")), nil)
}

func (h *HTTPHandler) persistFailed(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("persist failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
	httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Could not save books", nil)
}
