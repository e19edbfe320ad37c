package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrProjectNotFound      = goerr.New("project not found")
	ErrNotificationNotFound = goerr.New("notification not found")
)

// ErrTagInvalidInput marks errors raised while validating loaded data
var ErrTagInvalidInput = goerr.NewTag("invalid_input")
