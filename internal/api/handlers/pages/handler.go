package pages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	"github.com/m04kA/incubator-booking/internal/service/pages"
	"github.com/m04kA/incubator-booking/internal/service/pages/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные страницы: slug из латиницы, цифр и дефисов, заголовок и текст обязательны"
	msgNotFound           = "страница не найдена"
	msgSlugTaken          = "страница с таким slug уже существует"
)

// Handler обработчики информационных страниц
type Handler struct {
	service PageService
	logger  Logger
}

func NewHandler(service PageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/pages
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /pages - Failed to list pages: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Get GET /api/v1/pages/{slug}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	resp, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		h.respondError(w, "GET /pages/{slug}", slug, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Create POST /api/v1/admin/pages
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/pages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/pages", req.Slug, err)
		return
	}

	h.logger.Info("POST /admin/pages - Page created: slug=%s", resp.Slug)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// Update PATCH /api/v1/admin/pages/{slug}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req models.UpdatePageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/pages/{slug} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), slug, &req)
	if err != nil {
		h.respondError(w, "PATCH /admin/pages/{slug}", slug, err)
		return
	}

	h.logger.Info("PATCH /admin/pages/{slug} - Page updated: slug=%s", resp.Slug)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Delete DELETE /api/v1/admin/pages/{slug}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	if err := h.service.Delete(r.Context(), slug); err != nil {
		h.respondError(w, "DELETE /admin/pages/{slug}", slug, err)
		return
	}

	h.logger.Info("DELETE /admin/pages/{slug} - Page deleted: slug=%s", slug)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, route, slug string, err error) {
	switch {
	case errors.Is(err, pages.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, pages.ErrPageNotFound):
		h.logger.Warn("%s - Page not found: slug=%s", route, slug)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, pages.ErrSlugTaken):
		h.logger.Warn("%s - Slug taken: slug=%s", route, slug)
		handlers.RespondConflict(w, msgSlugTaken)

	default:
		h.logger.Error("%s - Service error: slug=%s, error=%v", route, slug, err)
		handlers.RespondInternalError(w)
	}
}
