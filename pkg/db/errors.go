package db

import "errors"

var (
	errFailedOpenDB      = errors.New("failed to open database")
	errFailedToEnableWAL = errors.New("failed to enable WAL mode")
	errFailedToInit      = errors.New("failed to initialize schema")
	errFailedToInsert    = errors.New("failed to insert")
	errFailedToQuery     = errors.New("failed to query")
	errFailedToScan      = errors.New("failed to scan")
	errFailedToClean     = errors.New("failed to clean")
	errFailedToBeginTx   = errors.New("failed to begin transaction")
)
