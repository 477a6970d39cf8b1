package httpapi

import (
	"net/http"

	"github.com/albertocester96/programma-manutenzioni/internal/service"
	"github.com/go-chi/chi/v5"
)

type EquipmentHandler struct {
	svc          service.EquipmentService
	maintenances service.MaintenanceService
}

func NewEquipmentHandler(svc service.EquipmentService, maintenances service.MaintenanceService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc, maintenances: maintenances}
}

func (h *EquipmentHandler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
		r.Get("/maintenances", h.history)
	})
}

func (h *EquipmentHandler) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	out := make([]equipmentDTO, 0, len(list))
	for _, e := range list {
		out = append(out, toEquipmentDTO(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *EquipmentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	e, err := req.toDomain()
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	if err := h.svc.Create(r.Context(), e); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEquipmentDTO(e))
}

func (h *EquipmentHandler) get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEquipmentDTO(e))
}

func (h *EquipmentHandler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}

	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	e, err := req.toDomain()
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	e.ID = id
	e.CreatedAt = existing.CreatedAt
	e.LastMaintenance = existing.LastMaintenance
	if err := h.svc.Update(r.Context(), e); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEquipmentDTO(e))
}

// history lists every maintenance ever scheduled against one piece of
// equipment, completed and archived included.
func (h *EquipmentHandler) history(w http.ResponseWriter, r *http.Request) {
	list, err := h.maintenances.ListByEquipment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMaintenanceDTOs(list))
}

func (h *EquipmentHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
