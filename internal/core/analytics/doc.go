// Package analytics turns plain financial records into derived projections: debt
// payoff plans, reconstructed net-worth series, savings goal projections, income
// normalisation and investment return estimates.
//
// Everything here is pure computation on value types from the domain package.
// Inputs are never mutated and no function performs I/O, so all of them are safe
// for concurrent use. Loading records, fetching market prices and persisting
// results is the caller's job (see internal/core/services).
package analytics
