package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// defaultName mirrors the fallback used when the name query parameter is
// absent; its absence is not an error.
const defaultName = "john"

type result struct {
	Result string `json:"result"`
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)

	records, err := s.store.ReadByName(r.Context(), name)
	if err != nil {
		serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		serverError(w, err)
	}
}

func (s *Server) handleWrite(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)

	if err := s.store.Insert(r.Context(), name); err != nil {
		serverError(w, err)
		return
	}

	writeResult(w, http.StatusOK, fmt.Sprintf("Added record with name:%s to database", name))
}

// handleDelete drops the whole table, not just matching rows. The name
// parameter is accepted and ignored.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DropTable(r.Context()); err != nil {
		serverError(w, err)
		return
	}

	writeResult(w, http.StatusOK, "Deleted all data in the table")
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusNotFound, fmt.Sprintf("path: %s is not valid", r.URL.Path))
}

func nameParam(r *http.Request) string {
	if name := r.URL.Query().Get("name"); name != "" {
		return name
	}
	return defaultName
}

func serverError(w http.ResponseWriter, err error) {
	writeResult(w, http.StatusInternalServerError,
		fmt.Sprintf("some error happened while processing the request: %v", err))
}

func writeResult(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(result{Result: msg}); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}
