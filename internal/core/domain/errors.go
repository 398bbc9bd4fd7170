package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPayload is returned when decoding an absent payload.
	ErrEmptyPayload = zerr.New("payload is empty")

	// ErrTrailingData is returned when a payload holds more than one JSON value.
	ErrTrailingData = zerr.New("payload has data after the JSON value")

	// ErrMissingEndpoint is returned when an observation carries no endpoint address.
	ErrMissingEndpoint = zerr.New("observation has no endpoint id")

	// ErrInvalidObservation is returned when an ingest transport receives a record it cannot decode.
	ErrInvalidObservation = zerr.New("invalid observation")

	// ErrNoClusterGraph is returned by the CLI when a payload holds no recognised cluster shape.
	ErrNoClusterGraph = zerr.New("no cluster graph found in payload")

	// ErrInvalidPattern is returned when a classifier address pattern does not compile.
	ErrInvalidPattern = zerr.New("invalid address pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file parses but fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrServerFailed is returned when the ingest server stops unexpectedly.
	ErrServerFailed = zerr.New("ingest server failed")

	// ErrSpoolWatchFailed is returned when the spool directory cannot be watched.
	ErrSpoolWatchFailed = zerr.New("failed to watch spool directory")

	// ErrSpoolReadFailed is returned when a spooled observation file cannot be read.
	ErrSpoolReadFailed = zerr.New("failed to read spooled observation")

	// ErrInputReadFailed is returned when a CLI input file cannot be read.
	ErrInputReadFailed = zerr.New("failed to read input file")
)
