package httpapi

import (
	"net/http"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/albertocester96/programma-manutenzioni/internal/service"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Delete("/", h.delete)
	})
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	t := domain.CategoryType(r.URL.Query().Get("type"))
	list, err := h.svc.List(r.Context(), t)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	out := make([]categoryDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	c := &domain.Category{Name: req.Name, Type: domain.CategoryType(req.Type)}
	if err := h.svc.Create(r.Context(), c); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryDTO(c))
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryDTO(c))
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
