package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

// authenticate exchanges credentials for a signed JWT, returned both in the
// body as id_token and in the Authorization response header.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.LoginVM
	if err := decodeJSON(r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, err, "")
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, credentials)
	if err != nil {
		log.Err(err).Str("login", credentials.Username).Msg("authentication failed")
		h.writeError(w, r, err, "")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err, "")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.JWTToken{IDToken: token.SignedString}, http.StatusOK)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetAccount(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("account lookup failed")
		h.writeError(w, r, err, userEntityName)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewUserDTO(user), http.StatusOK)
}
