package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/notmobil/backend/models"
	"github.com/notmobil/backend/service"
	"github.com/notmobil/backend/store"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Service *service.Service
	log     *logrus.Entry
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Service: svc,
		log:     logrus.WithField("component", "rest"),
	}
}

type contextKey string

const userContextKey contextKey = "user"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	User         userReply `json:"user"`
}

type userReply struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.sendError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	user, tokens, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.sendError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.WithError(err).Error("login failed")
		h.sendError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.sendResponse(w, http.StatusOK, loginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User: userReply{
			Id:    user.Id,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		h.sendError(w, http.StatusBadRequest, "Refresh token required")
		return
	}

	accessToken, err := h.Service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	h.sendResponse(w, http.StatusOK, refreshResponse{AccessToken: accessToken})
}

// RequireAuth verifies the bearer token and stores the authenticated user
// in the request context. Any verification failure is a plain 401; the
// reason is not surfaced to the client.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.getTokenFromAuthHeader(r)
		user, err := h.Service.AuthenticateToken(r.Context(), token)
		if err != nil {
			h.sendError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) models.User {
	user, _ := ctx.Value(userContextKey).(models.User)
	return user
}

func (h *Handler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	notes, err := h.Service.ListNotes(r.Context(), user)
	if err != nil {
		h.log.WithError(err).Error("list notes failed")
		h.sendError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.sendResponse(w, http.StatusOK, notes)
}

func (h *Handler) HandleGetNote(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	noteId := chi.URLParam(r, "id")

	note, err := h.Service.GetNote(r.Context(), user, noteId)
	if err != nil {
		h.handleNoteError(w, err)
		return
	}

	h.sendResponse(w, http.StatusOK, note)
}

type createNoteRequest struct {
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Tags       []string        `json:"tags"`
	Location   json.RawMessage `json:"location"`
	SensorData json.RawMessage `json:"sensorData"`
}

func (h *Handler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.Service.CreateNote(r.Context(), user, service.NoteFields{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		Location:   req.Location,
		SensorData: req.SensorData,
	})
	if err != nil {
		h.log.WithError(err).Error("create note failed")
		h.sendError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.sendResponse(w, http.StatusCreated, note)
}

// Pointer fields distinguish "field omitted" from "field set to its zero
// value"; only fields present in the body are applied.
type updateNoteRequest struct {
	Title      *string         `json:"title"`
	Content    *string         `json:"content"`
	Tags       *[]string       `json:"tags"`
	Location   json.RawMessage `json:"location"`
	SensorData json.RawMessage `json:"sensorData"`
}

func (h *Handler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	noteId := chi.URLParam(r, "id")

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.Service.UpdateNote(r.Context(), user, noteId, models.NoteUpdate{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		Location:   req.Location,
		SensorData: req.SensorData,
	})
	if err != nil {
		h.handleNoteError(w, err)
		return
	}

	h.sendResponse(w, http.StatusOK, note)
}

func (h *Handler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	noteId := chi.URLParam(r, "id")

	if err := h.Service.DeleteNote(r.Context(), user, noteId); err != nil {
		h.handleNoteError(w, err)
		return
	}

	h.sendResponse(w, http.StatusOK, struct{}{})
}

type summarizeRequest struct {
	Text         string `json:"text"`
	GeminiAPIKey string `json:"geminiApiKey"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		h.sendError(w, http.StatusBadRequest, "Text required")
		return
	}

	summary := h.Service.Summarize(r.Context(), req.Text, req.GeminiAPIKey)
	h.sendResponse(w, http.StatusOK, summarizeResponse{Summary: summary})
}

type textRequest struct {
	Text string `json:"text"`
}

type generateTagsResponse struct {
	Tags []string `json:"tags"`
}

func (h *Handler) HandleGenerateTags(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		h.sendError(w, http.StatusBadRequest, "Text required")
		return
	}

	h.sendResponse(w, http.StatusOK, generateTagsResponse{Tags: h.Service.GenerateTags(req.Text)})
}

type classifyResponse struct {
	Category string `json:"category"`
}

func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		h.sendError(w, http.StatusBadRequest, "Text required")
		return
	}

	h.sendResponse(w, http.StatusOK, classifyResponse{Category: h.Service.Classify(req.Text)})
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.sendResponse(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "NotMobil API is running",
	})
}

func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.sendError(w, http.StatusNotFound, "Endpoint not found")
}

func (h *Handler) handleNoteError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNoteNotFound) {
		h.sendError(w, http.StatusNotFound, "Note not found")
		return
	}
	h.log.WithError(err).Error("note operation failed")
	h.sendError(w, http.StatusInternalServerError, "Internal server error")
}

func (h *Handler) sendResponse(w http.ResponseWriter, status int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.WithError(err).Error("failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) sendError(w http.ResponseWriter, status int, message string) {
	h.sendResponse(w, status, errorResponse{Error: message})
}

func (h *Handler) getTokenFromAuthHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return ""
	}
	return strings.TrimPrefix(authHeader, prefix)
}
