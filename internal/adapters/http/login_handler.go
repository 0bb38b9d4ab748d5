package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"enquete/internal/adapters/http/request"
	"enquete/internal/adapters/http/response"
	"enquete/internal/config"
	"enquete/internal/core/login"
	"enquete/internal/domain"
	"enquete/internal/logger"

	"github.com/google/uuid"
)

const sessionCookieName = "session_id"

type LoginHandler struct {
	validation     domain.Validation
	authentication domain.Authentication
	storage        StorageProvider
	cfg            *config.Config
	log            logger.Logger
	metrics        *LoginMetrics

	decoder request.RequestDecoder
	writer  response.ResponseWriter

	inflight *sessionLocks
}

type LoginHandlerDeps struct {
	Validation     domain.Validation
	Authentication domain.Authentication
	Storage        StorageProvider
	Metrics        *LoginMetrics
	Decoder        request.RequestDecoder
	Writer         response.ResponseWriter
}

func NewLoginHandler(cfg *config.Config, log logger.Logger, deps LoginHandlerDeps) *LoginHandler {
	return &LoginHandler{
		validation:     deps.Validation,
		authentication: deps.Authentication,
		storage:        deps.Storage,
		cfg:            cfg,
		log:            log,
		metrics:        deps.Metrics,
		decoder:        deps.Decoder,
		writer:         deps.Writer,
		inflight:       newSessionLocks(),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type validateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type validateResponse struct {
	Field string `json:"field"`
	Error string `json:"error"`
	Valid bool   `json:"valid"`
}

type loginResponse struct {
	Name     string `json:"name,omitempty"`
	Redirect string `json:"redirect"`
}

// State reports the form as it starts, with the errors of empty fields.
func (h *LoginHandler) State(w http.ResponseWriter, r *http.Request) {
	form := login.NewForm(h.validation, h.authentication, nil)
	h.writer.Write(w, http.StatusOK, &response.Response{
		Data: form.State(),
	})
}

func (h *LoginHandler) Validate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req validateRequest
	if err := h.decoder.Decode(r, &req); err != nil {
		h.writer.Write(w, http.StatusBadRequest, &response.Response{
			Message: err.Error(),
		})
		return
	}

	msg := h.validation.Validate(req.Field, req.Value)
	h.writer.Write(w, http.StatusOK, &response.Response{
		Data: validateResponse{Field: req.Field, Error: msg, Valid: msg == ""},
	})
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req loginRequest
	if err := h.decoder.Decode(r, &req); err != nil {
		h.writer.Write(w, http.StatusBadRequest, &response.Response{
			Message: err.Error(),
		})
		return
	}

	sessionID := h.session(w, r)
	form := login.NewForm(h.validation, h.authentication, h.storage(w, sessionID))
	_ = form.SetField(login.FieldEmail, req.Email)
	_ = form.SetField(login.FieldPassword, req.Password)

	if !form.CanSubmit() {
		h.metrics.observe("invalid_form")
		h.writer.WriteValidationError(w, fieldErrors(form.State()))
		return
	}

	if !h.inflight.acquire(sessionID) {
		h.metrics.observe("in_progress")
		h.log.Debug("login: submit already in flight", "session_id", sessionID)
		h.writer.Write(w, http.StatusConflict, &response.Response{
			Message: login.MainErrorMessage(login.ErrSubmitInProgress),
		})
		return
	}
	defer h.inflight.release(sessionID)

	account, err := form.Submit(r.Context())
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	h.metrics.observe("success")
	h.writer.Write(w, http.StatusOK, &response.Response{
		Data: loginResponse{Name: account.Name, Redirect: "/"},
	})
}

func (h *LoginHandler) writeSubmitError(w http.ResponseWriter, err error) {
	msg := login.MainErrorMessage(err)

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.metrics.observe("invalid_credentials")
		h.writer.Write(w, http.StatusUnauthorized, &response.Response{Message: msg})
	case errors.Is(err, domain.ErrUnexpected):
		h.metrics.observe("unexpected")
		h.log.Warn("login: remote authentication failed", "error", err)
		h.writer.Write(w, http.StatusBadGateway, &response.Response{Message: msg})
	default:
		h.metrics.observe("error")
		h.log.Error("login: submit failed", "error", err)
		h.writer.Write(w, http.StatusInternalServerError, &response.Response{
			Message: "failed to sign in",
		})
	}
}

func (h *LoginHandler) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func fieldErrors(state login.State) map[string]string {
	errs := make(map[string]string)
	if state.EmailError != "" {
		errs[login.FieldEmail] = state.EmailError
	}
	if state.PasswordError != "" {
		errs[login.FieldPassword] = state.PasswordError
	}
	return errs
}

// sessionLocks admits one login submit per session at a time.
type sessionLocks struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{ids: make(map[string]struct{})}
}

func (l *sessionLocks) acquire(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.ids[id]; busy {
		return false
	}
	l.ids[id] = struct{}{}
	return true
}

func (l *sessionLocks) release(id string) {
	l.mu.Lock()
	delete(l.ids, id)
	l.mu.Unlock()
}
