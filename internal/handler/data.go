// data.go implements the backup surface: full-model export, import-replace,
// and the destructive reset.
package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// getExport handles GET /api/export.
// Unlike the persisted document, the export is self-contained: every
// ticket payload is inlined so the file can be imported on another
// machine (or after a reset) without the blob store.
func (s *Server) getExport(w http.ResponseWriter, _ *http.Request) {
	name := fmt.Sprintf("trip-backup-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.trips.Model()); err != nil {
		writeError(w, err)
	}
}

// postImport handles POST /api/import.
// The body must be a previously exported document; the same two required
// top-level fields are checked before anything is replaced.
func (s *Server) postImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, "could not read request body")
		return
	}
	doc, err := domain.ParseModel(body)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{errorDetail{
			Code:    "validation_error",
			Message: "file format error: expected a trip backup with itinerary and flights",
		}})
		return
	}

	model, err := s.trips.ImportAll(r.Context(), doc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model)
}

// postReset handles POST /api/reset.
// Reset is irreversible, so the request must carry {"confirm":true};
// anything else is rejected before the service is called.
func (s *Server) postReset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Confirm {
		writeBadRequest(w, `reset requires {"confirm":true}`)
		return
	}

	if err := s.trips.ResetAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
