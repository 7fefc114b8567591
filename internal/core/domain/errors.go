package domain

import "errors"

// ============================================================================
// Configuration Errors
// ============================================================================

var (
	ErrModelUnavailable       = errors.New("model provider is not available")
	ErrModelArtifact          = errors.New("invalid model artifact")
	ErrArtifactNotFound       = errors.New("model artifact not found")
	ErrFeatureOrderMismatch   = errors.New("model feature order does not match the assessment input table")
	ErrUnsupportedModelKind   = errors.New("unsupported model kind")
	ErrUnsupportedModelSource = errors.New("unsupported model source")
)

// ============================================================================
// Contract Errors
// ============================================================================

var (
	ErrContractViolation = errors.New("model contract violation")
)

// ============================================================================
// Input Errors
// ============================================================================

var (
	ErrFieldOutOfRange = errors.New("field value out of range")
)
