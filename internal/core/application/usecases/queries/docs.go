// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the aggregates and read the document store directly,
// decoding into flat response models shaped for the HTTP layer.
package queries
