package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/service"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

// Problem type suffixes appended to [models.ProblemBaseURL].
const (
	problemWithMessage  = "/problem-with-message"
	constraintViolation = "/constraint-violation"
	loginAlreadyUsed    = "/login-already-used"
	emailAlreadyUsed    = "/email-already-used"
)

// problemKind describes how one sentinel error is rendered.
type problemKind struct {
	status   int
	typ      string
	title    string
	errorKey string
}

var errorStatusMap = map[error]problemKind{
	service.ErrIDExists:         {http.StatusBadRequest, problemWithMessage, "A new entity cannot already have an ID", "idexists"},
	service.ErrIDNull:           {http.StatusBadRequest, problemWithMessage, "Invalid id", "idnull"},
	service.ErrLoginAlreadyUsed: {http.StatusBadRequest, loginAlreadyUsed, "Login name already used!", "login-already-used"},
	service.ErrEmailAlreadyUsed: {http.StatusBadRequest, emailAlreadyUsed, "Email is already in use!", "email-already-used"},
	service.ErrUUIDAlreadyUsed:  {http.StatusBadRequest, problemWithMessage, "Solution uuid already used!", "uuid-already-used"},
	store.ErrPhoneAlreadyExists: {http.StatusBadRequest, problemWithMessage, "Phone is already in use!", "phone-already-used"},

	service.ErrInvalidDataProvided:   {http.StatusBadRequest, constraintViolation, "Method argument not valid", "validation"},
	service.ErrVersionIsNotSpecified: {http.StatusBadRequest, problemWithMessage, "Bad Request", "validation"},
	ErrInvalidRequestBody:            {http.StatusBadRequest, problemWithMessage, "Bad Request", "http.400"},
	ErrInvalidPathParam:              {http.StatusBadRequest, problemWithMessage, "Bad Request", "http.400"},
	ErrInvalidPagination:             {http.StatusBadRequest, problemWithMessage, "Bad Request", "http.400"},

	service.ErrUserNotFound:     {http.StatusNotFound, problemWithMessage, "Not Found", "notfound"},
	service.ErrSolutionNotFound: {http.StatusNotFound, problemWithMessage, "Not Found", "notfound"},

	service.ErrForbidden: {http.StatusForbidden, problemWithMessage, "Forbidden", "http.403"},
	ErrMissingAuthority:  {http.StatusForbidden, problemWithMessage, "Forbidden", "http.403"},

	service.ErrWrongCredentials:        {http.StatusUnauthorized, problemWithMessage, "Unauthorized", "http.401"},
	service.ErrUserNotActivated:        {http.StatusUnauthorized, problemWithMessage, "Unauthorized", "http.401"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, problemWithMessage, "Unauthorized", "http.401"},
	ErrEmptyAuthorizationHeader:        {http.StatusUnauthorized, problemWithMessage, "Unauthorized", "http.401"},
	ErrInvalidAuthorizationHeader:      {http.StatusUnauthorized, problemWithMessage, "Unauthorized", "http.401"},
}

var internalProblem = problemKind{http.StatusInternalServerError, problemWithMessage, "Internal Server Error", "http.500"}

func kindFromError(err error) problemKind {
	for target, kind := range errorStatusMap {
		if errors.Is(err, target) {
			return kind
		}
	}
	return internalProblem
}

func statusFromError(err error) int {
	return kindFromError(err).status
}

// writeError renders err as a problem body and sets the failure alert
// headers for entityName.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, entityName string) {
	kind := kindFromError(err)
	if kind.status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	w.Header().Set("X-"+h.appName+"-error", "error."+kind.errorKey)
	w.Header().Set("X-"+h.appName+"-params", entityName)

	_, _ = utils.WriteProblem(w, models.Problem{
		Type:       models.ProblemBaseURL + kind.typ,
		Title:      kind.title,
		Status:     kind.status,
		Message:    "error." + kind.errorKey,
		EntityName: entityName,
		ErrorKey:   kind.errorKey,
	})
}

// setAlert sets the success alert headers describing a mutation.
func (h *Handler) setAlert(w http.ResponseWriter, message, param string) {
	w.Header().Set("X-"+h.appName+"-alert", message)
	w.Header().Set("X-"+h.appName+"-params", param)
}
