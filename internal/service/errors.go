package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrEmptyGroupName = errors.New("group name is empty")

	ErrValidationNoTargets         = errors.New("no target receivers provided")
	ErrValidationUnknownType       = errors.New("unknown question type")
	ErrValidationBadScaleBounds    = errors.New("scale question needs min < max")
	ErrValidationNotEnoughOptions  = errors.New("choice question needs at least two options")
	ErrValidationBadDate           = errors.New("date must be in YYYY-MM-DD form")
	ErrValidationEmptyMemoryFields = errors.New("memory entry needs a title and a text")
)
