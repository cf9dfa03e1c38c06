package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gedgraph/pkg/buildinfo"
	gerrors "github.com/matzehuels/gedgraph/pkg/errors"
	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

// DataResponse is the body of GET /api/genealogy/data.
type DataResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	People     []genealogy.Person   `json:"people"`
	Statistics genealogy.Statistics `json:"statistics"`
	Count      int                  `json:"count"`
}

// DistanceResponse is the body of GET /api/distance. Distance is null when
// the two people are not connected within the depth bound.
type DistanceResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance *int   `json:"distance"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"loaded": s.people.Loaded(),
		"people": s.people.Graph().Len(),
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	people := s.people.People()
	if !s.people.Loaded() || len(people) == 0 {
		writeJSON(w, http.StatusNotFound, DataResponse{
			Message: "No genealogy data loaded",
			People:  []genealogy.Person{},
		})
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{
		Success:    true,
		Message:    fmt.Sprintf("Loaded %d people", len(people)),
		People:     people,
		Statistics: s.people.Statistics(),
		Count:      len(people),
	})
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.people.Statistics())
}

// handleListPeople applies the q, tag and profession filters in turn.
func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	people := s.people.People()
	q := r.URL.Query()
	if v := q.Get("q"); v != "" {
		people = genealogy.SearchByName(people, v)
	}
	if v := q.Get("tag"); v != "" {
		people = genealogy.FilterByTag(people, v)
	}
	if v := q.Get("profession"); v != "" {
		people = genealogy.FilterByProfession(people, v)
	}
	if people == nil {
		people = []genealogy.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

func (s *Server) handlePerson(w http.ResponseWriter, r *http.Request) {
	id, err := gerrors.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	p, ok := s.people.Graph().Person(id)
	if !ok {
		writeError(w, genealogy.NotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRelatives(w http.ResponseWriter, r *http.Request) {
	id, err := gerrors.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	rel, err := s.people.Graph().Relatives(id)
	if err != nil {
		writeError(w, genealogy.LookupError(id, err))
		return
	}
	writeJSON(w, http.StatusOK, rel)
}

func (s *Server) handleAncestors(w http.ResponseWriter, r *http.Request) {
	s.closure(w, r, (*genealogy.Graph).Ancestors)
}

func (s *Server) handleDescendants(w http.ResponseWriter, r *http.Request) {
	s.closure(w, r, (*genealogy.Graph).Descendants)
}

func (s *Server) closure(w http.ResponseWriter, r *http.Request, walk func(*genealogy.Graph, string) ([]genealogy.Person, error)) {
	id, err := gerrors.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	people, err := walk(s.people.Graph(), id)
	if err != nil {
		writeError(w, genealogy.LookupError(id, err))
		return
	}
	writeJSON(w, http.StatusOK, people)
}

func (s *Server) handleGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := gerrors.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	g := s.people.Graph()
	level, err := gerrors.ParseGenerationLevel(chi.URLParam(r, "level"), g.MaxDepth())
	if err != nil {
		writeError(w, err)
		return
	}
	people, err := g.PeopleByGeneration(r.Context(), id, level)
	if err != nil {
		writeError(w, genealogy.LookupError(id, err))
		return
	}
	writeJSON(w, http.StatusOK, people)
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := gerrors.ParsePersonID(q.Get("from"))
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := gerrors.ParsePersonID(q.Get("to"))
	if err != nil {
		writeError(w, err)
		return
	}

	g := s.people.Graph()
	for _, id := range []string{from, to} {
		if _, ok := g.Person(id); !ok {
			writeError(w, genealogy.NotFound(id))
			return
		}
	}

	resp := DistanceResponse{From: from, To: to}
	if d, ok := g.GenerationDistance(from, to); ok {
		resp.Distance = &d
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := gerrors.GetCode(err)
	if code == "" {
		code = gerrors.ErrCodeInternal
	}
	writeJSON(w, gerrors.HTTPStatus(err), ErrorResponse{
		Code:    string(code),
		Message: gerrors.UserMessage(err),
	})
}
