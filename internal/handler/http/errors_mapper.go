package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-memory-calendar/internal/service"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:         http.StatusBadRequest,
	service.ErrWrongPassword:               http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:     http.StatusUnauthorized,
	service.ErrTokenCreationFailed:         http.StatusInternalServerError,
	service.ErrEmptyGroupName:              http.StatusBadRequest,
	service.ErrValidationNoTargets:         http.StatusBadRequest,
	service.ErrValidationUnknownType:       http.StatusBadRequest,
	service.ErrValidationBadScaleBounds:    http.StatusBadRequest,
	service.ErrValidationNotEnoughOptions:  http.StatusBadRequest,
	service.ErrValidationBadDate:           http.StatusBadRequest,
	service.ErrValidationEmptyMemoryFields: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrGroupNotFound:         http.StatusNotFound,
	store.ErrDuplicateGroupName:    http.StatusConflict,
	store.ErrDuplicateMembership:   http.StatusConflict,
	store.ErrAlreadySubmitted:      http.StatusConflict,
	store.ErrWritingDocument:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
