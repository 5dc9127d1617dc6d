package domain

import "errors"

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrInvalidMotion is returned when a motion token is not one of L, R or S.
var ErrInvalidMotion = errors.New("invalid motion")

// ErrInvalidClassification is returned when a state marker cannot be classified.
var ErrInvalidClassification = errors.New("invalid state classification")

// ErrInvalidMode is returned for an unknown execution mode.
var ErrInvalidMode = errors.New("invalid execution mode")
