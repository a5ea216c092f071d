package config

import "errors"

// Validation errors returned by [ClientConfig] validation when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidTransportConfigs indicates an unknown transport kind.
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	// ErrInvalidBasketConfigs indicates a basket id without a store base URL.
	ErrInvalidBasketConfigs = errors.New("invalid basket configuration")
	// ErrInvalidWorkerConfigs indicates a negative timeout or interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
