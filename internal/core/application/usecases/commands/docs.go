// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Every command validates its input in the constructor and every
// handler starts with the authorization decision before touching any
// aggregate.
package commands
