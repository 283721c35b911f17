package main

import "errors"

var (
	errMissingFile  = errors.New("batch: --file is required")
	errInvalidValue = errors.New("invalid stack value")
	errBatchFailed  = errors.New("batch: one or more programs failed")
)
