package httpapi

import (
	"errors"
	"net/http"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/albertocester96/programma-manutenzioni/internal/service"
	"github.com/go-chi/chi/v5"
)

// MaintenanceHandler exposes maintenance CRUD plus the recurrence
// operations: complete, related chain, frequency update.
type MaintenanceHandler struct {
	svc service.MaintenanceService
}

func NewMaintenanceHandler(svc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

func (h *MaintenanceHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
		r.Patch("/complete", h.complete)
		r.Patch("/archive", h.archive)
		r.Patch("/frequency", h.updateFrequency)
		r.Get("/related", h.related)
	})
}

func (h *MaintenanceHandler) list(w http.ResponseWriter, r *http.Request) {
	if filter := r.URL.Query().Get("filter"); filter != "" {
		list, err := h.svc.ListByDateFilter(r.Context(), service.DateFilter(filter))
		if err != nil {
			writeServiceErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMaintenanceDTOs(list))
		return
	}

	status := domain.MaintenanceStatus(r.URL.Query().Get("status"))
	if status != "" && !domain.ValidMaintenanceStatuses[string(status)] {
		writeErr(w, http.StatusBadRequest, "unknown status "+string(status))
		return
	}
	list, err := h.svc.List(r.Context(), status)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaintenanceDTOs(list))
}

func (h *MaintenanceHandler) create(w http.ResponseWriter, r *http.Request) {
	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	m, err := req.toDomain()
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	if err := h.svc.Create(r.Context(), m); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMaintenanceDTO(m))
}

func (h *MaintenanceHandler) get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaintenanceDTO(m))
}

func (h *MaintenanceHandler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}

	var req maintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	m, err := req.toDomain()
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	m.ID = id
	m.CreatedAt = existing.CreatedAt
	m.ParentMaintenanceID = existing.ParentMaintenanceID
	m.CompletedDate = existing.CompletedDate
	m.CompletedBy = existing.CompletedBy
	if m.Status == "" {
		m.Status = existing.Status
	}
	if err := h.svc.Update(r.Context(), m); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaintenanceDTO(m))
}

func (h *MaintenanceHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// completeResponse carries the completed task plus a warning when the next
// occurrence could not be generated. The completion itself succeeded, so the
// status stays 200.
type completeResponse struct {
	maintenanceDTO
	Warning string `json:"warning,omitempty"`
}

func (h *MaintenanceHandler) complete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompletedBy string `json:"completedBy"`
	}
	// Body is optional.
	_ = decodeJSON(r, &req)

	m, err := h.svc.Complete(r.Context(), chi.URLParam(r, "id"), req.CompletedBy)
	if err != nil && m == nil {
		writeServiceErr(w, err)
		return
	}

	resp := completeResponse{maintenanceDTO: toMaintenanceDTO(m)}
	if errors.Is(err, service.ErrSuccessorGeneration) {
		resp.Warning = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *MaintenanceHandler) archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Archive(r.Context(), id); err != nil {
		writeServiceErr(w, err)
		return
	}
	m, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaintenanceDTO(m))
}

func (h *MaintenanceHandler) related(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Related(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaintenanceDTOs(list))
}

func (h *MaintenanceHandler) updateFrequency(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Frequency         string `json:"frequency"`
		PropagateToFuture bool   `json:"propagateToFuture"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	f, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		writeServiceErr(w, err)
		return
	}

	m, err := h.svc.UpdateFrequency(r.Context(), chi.URLParam(r, "id"), f, req.PropagateToFuture)
	if err != nil && m == nil {
		writeServiceErr(w, err)
		return
	}

	resp := completeResponse{maintenanceDTO: toMaintenanceDTO(m)}
	if errors.Is(err, service.ErrFrequencyPropagation) {
		resp.Warning = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}
