// Package httpapi exposes dialogue sessions over HTTP. Each session owns an
// information state; posting a message runs one interpret, update and
// generate cycle and returns the system's utterance, if any.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hupe1980/dialogmesh"
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/hupe1980/dialogmesh/session"
)

// DomainFactory builds a fresh domain per session from the case parameters
// supplied at session creation.
type DomainFactory func(params map[string]float64) core.Domain

// Options configure the API.
type Options struct {
	Store  session.Store
	Logger logging.Logger
}

// API wires dialogue sessions to HTTP handlers.
type API struct {
	newDomain    DomainFactory
	understander core.Understander
	generator    core.Generator
	store        session.Store
	logger       logging.Logger
}

// New creates an API serving dialogues for the given domain and language
// components.
func New(newDomain DomainFactory, understander core.Understander, generator core.Generator, optFns ...func(o *Options)) *API {
	opts := Options{
		Store:  session.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &API{
		newDomain:    newDomain,
		understander: understander,
		generator:    generator,
		store:        opts.Store,
		logger:       opts.Logger,
	}
}

// Router builds the HTTP routes.
func (a *API) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", a.createSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Post("/messages", a.postMessage)
			r.Get("/transcript", a.getTranscript)
			r.Delete("/", a.deleteSession)
		})
	})
	return r
}

type createSessionRequest struct {
	FeatureValues map[string]float64 `json:"feature_values,omitempty"`
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
	Utterance string `json:"utterance,omitempty"`
}

func (a *API) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	sess, err := a.store.Create(a.newDomain(req.FeatureValues))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cannot create session")
		return
	}

	resp := createSessionResponse{SessionID: sess.ID}
	err = sess.Turn(func() error {
		utterance, responded, err := a.bot(sess).SystemTurn()
		if err != nil {
			return err
		}
		if responded {
			sess.AppendSystem(utterance, "")
			resp.Utterance = utterance
		}
		return nil
	})
	if err != nil {
		a.logger.Error("Opening turn failed", "session_id", sess.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "opening turn failed")
		return
	}

	a.logger.Info("Session created", "session_id", sess.ID)
	writeJSON(w, http.StatusCreated, resp)
}

type postMessageRequest struct {
	Utterance string `json:"utterance"`
}

type postMessageResponse struct {
	Utterance string `json:"utterance,omitempty"`
	Responded bool   `json:"responded"`
}

func (a *API) postMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.store.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Utterance == "" {
		writeError(w, http.StatusBadRequest, "utterance is required")
		return
	}

	var resp postMessageResponse
	err := sess.Turn(func() error {
		sess.AppendUser(req.Utterance, "")
		utterance, responded, err := a.bot(sess).Respond(r.Context(), req.Utterance)
		if err != nil {
			return err
		}
		if responded {
			sess.AppendSystem(utterance, "")
		}
		resp = postMessageResponse{Utterance: utterance, Responded: responded}
		return nil
	})
	if err != nil {
		a.logger.Error("Turn failed", "session_id", sess.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "turn failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) getTranscript(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.store.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sess.ID,
		"transcript": sess.Transcript(),
	})
}

func (a *API) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if _, ok := a.store.Get(id); !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	a.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// bot rebuilds the façade around the session's state. Bots are cheap; the
// state carries everything that persists between turns.
func (a *API) bot(sess *session.Session) *dialogmesh.Bot {
	return dialogmesh.New(sess.State.Domain, func(o *dialogmesh.Options) {
		o.State = sess.State
		o.Understander = a.understander
		o.Generator = a.generator
		o.Logger = a.logger
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
