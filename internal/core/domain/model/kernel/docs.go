// Package kernel provides core domain primitives shared across the commerce
// domain model. It currently contains UUID, the identifier value object used
// by every aggregate (users, products, categories, orders).
//
// Kernel primitives are immutable, validate themselves, and are safe for
// concurrent use. They enforce that identifiers flowing through the system
// were constructed deliberately rather than defaulted.
package kernel
