package schemascope

import "errors"

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .schemascope.yaml is found.
	ErrConfigNotFound = errors.New("schemascope: no .schemascope.yaml found")

	// ErrEmptyDataset is returned when the dataset contains no objects.
	ErrEmptyDataset = errors.New("schemascope: dataset contains no objects")

	// ErrMalformedObject is returned for a dataset entry missing name or type.
	ErrMalformedObject = errors.New("schemascope: object missing name or type")

	// ErrDuplicateKey is returned when two dataset entries share a key.
	ErrDuplicateKey = errors.New("schemascope: duplicate object key")

	// ErrUnknownObjectType is returned for a dataset entry with an
	// unrecognized type.
	ErrUnknownObjectType = errors.New("schemascope: unknown object type")
)
