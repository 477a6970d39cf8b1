package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/albertocester96/programma-manutenzioni/internal/repository"
	"github.com/albertocester96/programma-manutenzioni/internal/service"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(out)
}

// writeServiceErr maps domain and repository errors onto HTTP statuses.
func writeServiceErr(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		writeErr(w, http.StatusConflict, err.Error())
	case errors.As(err, &verr):
		writeErr(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, service.ErrNotRecurring):
		writeErr(w, http.StatusBadRequest, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}
