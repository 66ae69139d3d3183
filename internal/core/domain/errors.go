package domain

import "go.trai.ch/zerr"

var (
	// ErrFileNotFound is returned when a reference cannot be located under
	// the search path policy.
	ErrFileNotFound = zerr.New("file not found in search path")

	// ErrParseFailed is returned when source text cannot be parsed into a
	// file module.
	ErrParseFailed = zerr.New("parse failed")

	// ErrFeatureDisabled is returned when a file uses an experimental
	// language feature that is not enabled in the configuration.
	ErrFeatureDisabled = zerr.New("experimental feature disabled")

	// ErrEvaluationAborted is returned when instantiating a file's own
	// content fails at evaluation time.
	ErrEvaluationAborted = zerr.New("evaluation aborted")

	// ErrInvalidConfig is returned when carve.yaml cannot be decoded.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNoInputSpecified is returned when a command is invoked without a
	// source file argument.
	ErrNoInputSpecified = zerr.New("no input file specified")
)
