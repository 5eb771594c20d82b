package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
)

var validate = validator.New()

// Deps are the use cases served over HTTP.
type Deps struct {
	Poster   ports.MessagePoster
	Editor   ports.MessageEditor
	Follower ports.UserFollower
	Timeline ports.TimelineViewer
	Wall     ports.WallViewer

	// NewID names posted messages. Defaults to a random UUID.
	NewID func() string
	// Logger receives one line per request. Defaults to slog.Default().
	Logger *slog.Logger
}

type Handler struct {
	deps Deps
}

func NewHandler(deps Deps) *Handler {
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Handler{deps: deps}
}

func (h *Handler) NewRouter(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&slogFormatter{logger: h.deps.Logger}))
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "traceparent", "baggage"},
	}).Handler)

	r.Post("/post", h.PostMessage)
	r.Post("/edit", h.EditMessage)
	r.Post("/follow", h.FollowUser)
	r.Get("/view", h.ViewTimeline)
	r.Get("/wall", h.ViewWall)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	return r
}

// --- DTOs ---

type postMessageRequest struct {
	User    string `json:"user" validate:"required"`
	Message string `json:"message"`
}

type editMessageRequest struct {
	MessageID string `json:"messageId" validate:"required"`
	Message   string `json:"message"`
}

type followUserRequest struct {
	User     string `json:"user" validate:"required"`
	Followee string `json:"followee" validate:"required"`
}

type idResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// --- HANDLERS ---

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if !decode(w, r, &req) {
		return
	}

	id := h.deps.NewID()
	res, err := h.deps.Poster.Handle(r.Context(), ports.PostMessageCommand{ID: id, Text: req.Message, Author: req.User})
	if err != nil {
		writeFault(w, err)
		return
	}
	if res.IsErr() {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: res.Err().Error()})
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	var req editMessageRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.deps.Editor.Handle(r.Context(), ports.EditMessageCommand{MessageID: req.MessageID, Text: req.Message})
	if err != nil {
		writeFault(w, err)
		return
	}
	if res.IsErr() {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: res.Err().Error()})
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: req.MessageID})
}

func (h *Handler) FollowUser(w http.ResponseWriter, r *http.Request) {
	var req followUserRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.deps.Follower.Handle(r.Context(), ports.FollowUserCommand{User: req.User, UserToFollow: req.Followee}); err != nil {
		writeFault(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) ViewTimeline(w http.ResponseWriter, r *http.Request) {
	user, ok := userParam(w, r)
	if !ok {
		return
	}

	p := &timelinePresenter{}
	if err := h.deps.Timeline.Handle(r.Context(), ports.ViewTimelineQuery{User: user}, p); err != nil {
		writeFault(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.messages)
}

func (h *Handler) ViewWall(w http.ResponseWriter, r *http.Request) {
	user, ok := userParam(w, r)
	if !ok {
		return
	}

	p := &timelinePresenter{}
	if err := h.deps.Wall.Handle(r.Context(), ports.ViewWallQuery{User: user}, p); err != nil {
		writeFault(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.messages)
}

// --- HELPERS ---

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

func userParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	user := r.URL.Query().Get("user")
	if user == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing user query parameter"})
		return "", false
	}
	return user, true
}

// writeFault maps returned errors; validation failures never get here.
func writeFault(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrMessageNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: domain.ErrMessageNotFound.Error()})
		return
	}
	slog.Error("❌ Request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
