package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sqlshift-labs/sqlshift/pkg/engine"
)

// maxBodySize caps request bodies at 1 MiB; statements are small.
const maxBodySize = 1 << 20

type sqlRequest struct {
	SQL     string `json:"sql"`
	Dialect string `json:"dialect"`

	// manipulate
	WithOrder bool `json:"with_order"`
	Limit     int  `json:"limit"`

	// transpile
	From string `json:"from"`
	To   string `json:"to"`
}

type errorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, req *sqlRequest) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		s.writeError(w, &engine.Error{
			Kind:    engine.KindInvalidArgument,
			Message: "malformed request body: " + err.Error(),
		})
		return false
	}
	if req.SQL == "" {
		s.writeError(w, &engine.Error{
			Kind:    engine.KindInvalidArgument,
			Message: "sql is required",
		})
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

// writeError maps engine errors to 400 with a structured payload; anything
// else is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var ee *engine.Error
	if errors.As(err, &ee) {
		s.writeJSON(w, http.StatusBadRequest, map[string]errorPayload{
			"error": {Kind: string(ee.Kind), Message: ee.Message},
		})
		return
	}
	s.logger.Error("internal error", "error", err)
	s.writeJSON(w, http.StatusInternalServerError, map[string]errorPayload{
		"error": {Kind: "internal", Message: "internal error"},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDialects(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"dialects": s.engine.Dialects()})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.engine.Validate(req.SQL, req.Dialect); err != nil {
		// Syntax failures are a negative answer, not an error.
		var ee *engine.Error
		if errors.As(err, &ee) && (ee.Kind == engine.KindLexError || ee.Kind == engine.KindParseError) {
			s.writeJSON(w, http.StatusOK, map[string]bool{"valid": false})
			return
		}
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func (s *Server) handleManipulate(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.engine.Manipulate(req.SQL, req.Dialect, engine.ManipulateOptions{
		WithOrder: req.WithOrder,
		Limit:     req.Limit,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"sql": out})
}

func (s *Server) handleTranspile(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.engine.Transpile(req.SQL, req.From, req.To)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"sql": out})
}

func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	cols, err := s.engine.Columns(req.SQL, req.Dialect)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"columns": cols})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req sqlRequest
	if !s.decode(w, r, &req) {
		return
	}
	tree, err := s.engine.ParseToTree(req.SQL, req.Dialect)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"tree": tree})
}
