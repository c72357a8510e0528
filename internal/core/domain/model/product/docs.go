// Package product contains the catalog product aggregate: descriptive fields,
// price and stock, customer ratings with a derived average, and sales variants.
package product
