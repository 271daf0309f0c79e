package server

import (
	"encoding/json"
	"net/http"

	"github.com/decipheralgo/go-realtime-server/persona"
)

type personaMergeRequest struct {
	Sections []persona.Section `json:"sections"`
}

type personaMergeResponse struct {
	OK            bool `json:"ok"`
	MergedCount   int  `json:"mergedCount"`
	TotalSections int  `json:"totalSections"`
}

// PersonaMergeHandler appends runtime sections to the composer. Malformed
// entries are dropped, not errored; the response reports how many survived.
func (s *Server) PersonaMergeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req personaMergeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		added, total := s.persona.Merge(req.Sections)
		s.writeJSON(w, http.StatusOK, personaMergeResponse{
			OK:            true,
			MergedCount:   added,
			TotalSections: total,
		})
	}
}

// PersonaClearHandler drops every merged section.
func (s *Server) PersonaClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.persona.Clear()
		s.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "totalSections": 0})
	}
}

// PersonaSnapshotHandler exposes a debug view of the composition inputs.
func (s *Server) PersonaSnapshotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := s.persona.Snapshot()
		s.writeJSON(w, http.StatusOK, map[string]any{
			"ok":       true,
			"snapshot": snapshot,
		})
	}
}
