package problem

import "errors"

// Parse-time sentinel errors. Every one is wrapped with the offending
// line number by Parse before it reaches the caller.
var (
	ErrUnknownSection         = errors.New("problem: predicate line outside any section")
	ErrUnknownPredicate       = errors.New("problem: unknown predicate")
	ErrUnknownObjectType      = errors.New("problem: unknown object type")
	ErrUnknownMode            = errors.New("problem: unknown mode name")
	ErrMalformedObjectName    = errors.New("problem: object name has no trailing integer")
	ErrMalformedObjectsLine   = errors.New("problem: malformed :objects line")
	ErrMalformedPredicate     = errors.New("problem: malformed predicate")
	ErrMalformedNumericFluent = errors.New("problem: malformed numeric fluent")
	ErrObjectIndexOutOfRange  = errors.New("problem: object index exceeds static limit")
	ErrStoreOwnershipConflict = errors.New("problem: store claimed by two different rovers")
)

// Validate-time sentinel errors (§7's "Validation" error kind).
var (
	ErrMissingGoalSection             = errors.New("problem: no :goal section present")
	ErrRoverPositionOutOfRange        = errors.New("problem: rover position out of range")
	ErrCameraWithoutCalibrationTarget = errors.New("problem: camera has no calibration target")
	ErrAsymmetricTraversal            = errors.New("problem: traversal edge without mutual visibility")
)
