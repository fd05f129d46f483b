package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

const (
	solutionEntityName = "solution"
	solutionsBaseURL   = "/api/solutions"
)

func (h *Handler) createSolution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var solution models.Solution
	if err := decodeJSON(r, &solution); err != nil {
		log.Err(err).Str("func", "*Handler.createSolution").Msg("invalid JSON was passed")
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	created, err := h.services.SolutionService.CreateSolution(ctx, solution)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createSolution").Msg("solution was not created")
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	id := solutionID(created)
	w.Header().Set("Location", solutionsBaseURL+"/"+id)
	h.setAlert(w, "A solution is created with identifier "+id, id)
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSolution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var solution models.Solution
	if err := decodeJSON(r, &solution); err != nil {
		log.Err(err).Str("func", "*Handler.updateSolution").Msg("invalid JSON was passed")
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	updated, err := h.services.SolutionService.UpdateSolution(ctx, solution)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateSolution").Msg("solution was not updated")
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	id := solutionID(updated)
	h.setAlert(w, "A solution is updated with identifier "+id, id)
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

// updateCompositeSolution applies a name/version/summary edit to the
// solution selected by uuid.
func (h *Handler) updateCompositeSolution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.CompositeSolutionUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Err(err).Str("func", "*Handler.updateCompositeSolution").Msg("invalid JSON was passed")
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	updated, err := h.services.CompositeSolutionService.UpdateComposite(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCompositeSolution").Str("uuid", update.UUID).Msg("composite solution was not updated")
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	h.setAlert(w, "A solution is updated with identifier "+update.UUID, update.UUID)
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) getSolution(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	solution, err := h.services.SolutionService.GetSolution(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSolution").Int64("id", id).Send()
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	_, _ = utils.WriteJSON(w, solution, http.StatusOK)
}

func (h *Handler) getSolutionByUUID(w http.ResponseWriter, r *http.Request) {
	uuid := chi.URLParam(r, "uuid")

	solution, err := h.services.SolutionService.GetSolutionByUUID(r.Context(), uuid)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSolutionByUUID").Str("uuid", uuid).Send()
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	_, _ = utils.WriteJSON(w, solution, http.StatusOK)
}

func (h *Handler) listSolutions(w http.ResponseWriter, r *http.Request) {
	pageable, err := pageableFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, solutionEntityName)
		return
	}
	filter := models.SolutionFilter{AuthorLogin: r.URL.Query().Get("authorLogin")}

	page, err := h.services.SolutionService.ListSolutions(r.Context(), filter, pageable)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listSolutions").Send()
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	content := page.Content
	if content == nil {
		content = []models.Solution{}
	}

	setPaginationHeaders(w, page, solutionsBaseURL)
	_, _ = utils.WriteJSON(w, content, http.StatusOK)
}

func (h *Handler) deleteSolution(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	if err = h.services.SolutionService.DeleteSolution(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteSolution").Int64("id", id).Send()
		h.writeError(w, r, err, solutionEntityName)
		return
	}

	param := strconv.FormatInt(id, 10)
	h.setAlert(w, "A solution is deleted with identifier "+param, param)
	w.WriteHeader(http.StatusOK)
}

func idFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidPathParam, raw)
	}
	return id, nil
}

func solutionID(s models.Solution) string {
	if s.ID == nil {
		return ""
	}
	return strconv.FormatInt(*s.ID, 10)
}
