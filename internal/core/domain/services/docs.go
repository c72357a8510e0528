// Package services provides domain services for logic that does not belong to
// a single aggregate. AccessPolicy centralizes the authorization decision made
// at the top of every protected operation: who may act on whose resource.
package services
