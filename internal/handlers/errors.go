package handlers

import "errors"

var errBackendUnavailable = errors.New("metadata backend unavailable")
