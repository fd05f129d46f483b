package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

const (
	userEntityName      = "userManagement"
	authorityEntityName = "authority"
	usersBaseURL        = "/api/users"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.UserDTO
	if err := decodeJSON(r, &dto); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("invalid JSON was passed")
		h.writeError(w, r, err, userEntityName)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, dto)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Str("login", dto.Login).Msg("user was not created")
		h.writeError(w, r, err, userEntityName)
		return
	}

	w.Header().Set("Location", usersBaseURL+"/"+user.Login)
	h.setAlert(w, "A user is created with identifier "+user.Login, user.Login)
	_, _ = utils.WriteJSON(w, models.NewUserDTO(user), http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.UserDTO
	if err := decodeJSON(r, &dto); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("invalid JSON was passed")
		h.writeError(w, r, err, userEntityName)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, dto)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Str("login", dto.Login).Msg("user was not updated")
		h.writeError(w, r, err, userEntityName)
		return
	}

	h.setAlert(w, "A user is updated with identifier "+dto.Login, dto.Login)
	_, _ = utils.WriteJSON(w, models.NewUserDTO(user), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	user, err := h.services.UserService.GetUser(r.Context(), login)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUser").Str("login", login).Send()
		h.writeError(w, r, err, userEntityName)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewUserDTO(user), http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	pageable, err := pageableFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, userEntityName)
		return
	}

	page, err := h.services.UserService.ListUsers(r.Context(), pageable)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listUsers").Send()
		h.writeError(w, r, err, userEntityName)
		return
	}

	dtos := make([]models.UserDTO, 0, len(page.Content))
	for _, user := range page.Content {
		dtos = append(dtos, models.NewUserDTO(user))
	}

	setPaginationHeaders(w, page, usersBaseURL)
	_, _ = utils.WriteJSON(w, dtos, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	if err := h.services.UserService.DeleteUser(r.Context(), login); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteUser").Str("login", login).Send()
		h.writeError(w, r, err, userEntityName)
		return
	}

	h.setAlert(w, "A user is deleted with identifier "+login, login)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getAuthorities(w http.ResponseWriter, r *http.Request) {
	authorities, err := h.services.UserService.GetAuthorities(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAuthorities").Send()
		h.writeError(w, r, err, authorityEntityName)
		return
	}

	if authorities == nil {
		authorities = []string{}
	}
	_, _ = utils.WriteJSON(w, authorities, http.StatusOK)
}

func (h *Handler) createAuthority(w http.ResponseWriter, r *http.Request) {
	authority := chi.URLParam(r, "authority")

	if err := h.services.UserService.CreateAuthority(r.Context(), authority); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createAuthority").Str("authority", authority).Send()
		h.writeError(w, r, err, authorityEntityName)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// deleteAuthority answers 200 when the authority existed and a bare 400
// otherwise.
func (h *Handler) deleteAuthority(w http.ResponseWriter, r *http.Request) {
	authority := chi.URLParam(r, "authority")

	deleted, err := h.services.UserService.DeleteAuthority(r.Context(), authority)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteAuthority").Str("authority", authority).Send()
		h.writeError(w, r, err, authorityEntityName)
		return
	}

	if !deleted {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) existsByLogin(w http.ResponseWriter, r *http.Request) {
	h.writeExistence(w, r, "login", h.services.UserService.ExistsByLogin)
}

func (h *Handler) existsByEmail(w http.ResponseWriter, r *http.Request) {
	h.writeExistence(w, r, "email", h.services.UserService.ExistsByEmail)
}

func (h *Handler) existsByPhone(w http.ResponseWriter, r *http.Request) {
	h.writeExistence(w, r, "phone", h.services.UserService.ExistsByPhone)
}

// writeExistence answers a probe with exactly "1" or "0". Lookup failures
// are logged and reported as "0".
func (h *Handler) writeExistence(w http.ResponseWriter, r *http.Request, param string, exists func(context.Context, string) (bool, error)) {
	value := chi.URLParam(r, param)
	if unescaped, err := url.PathUnescape(value); err == nil {
		value = unescaped
	}

	found, err := exists(r.Context(), value)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeExistence").Str(param, value).Msg("existence lookup failed")
		found = false
	}

	body := "0"
	if found {
		body = "1"
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
