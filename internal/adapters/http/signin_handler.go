package http

import (
	"errors"
	"net/http"

	"enquete/internal/adapters/http/request"
	"enquete/internal/adapters/http/response"
	"enquete/internal/adapters/http/validator"
	"enquete/internal/domain"
	"enquete/internal/logger"
)

// SignInHandler serves the remote authentication endpoint. Success bodies
// are the bare AccountModel, not the response envelope.
type SignInHandler struct {
	svc domain.SignInService
	log logger.Logger

	decoder   request.RequestDecoder
	writer    response.ResponseWriter
	validator validator.Validator
}

func NewSignInHandler(
	svc domain.SignInService,
	log logger.Logger,
	d request.RequestDecoder,
	w response.ResponseWriter,
	v validator.Validator,
) *SignInHandler {
	return &SignInHandler{
		svc:       svc,
		log:       log,
		decoder:   d,
		writer:    w,
		validator: v,
	}
}

func (h *SignInHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.AuthenticationParams
	if err := h.decoder.Decode(r, &req); err != nil {
		h.writer.Write(w, http.StatusBadRequest, &response.Response{
			Message: err.Error(),
		})
		return
	}

	if errs := h.validator.Validate(&req); len(errs) > 0 {
		h.writer.Write(w, http.StatusBadRequest, &response.Response{
			Message: "the given data was invalid",
			Errors:  errs,
		})
		return
	}

	account, err := h.svc.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.writer.Write(w, http.StatusUnauthorized, &response.Response{
				Message: "invalid credentials",
			})
			return
		}

		h.log.Error("signin: login failed", "error", err)
		h.writer.Write(w, http.StatusInternalServerError, &response.Response{
			Message: "failed to sign in",
		})
		return
	}

	writeJSON(w, http.StatusOK, account)
}
