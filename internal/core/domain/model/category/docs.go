// Package category contains the catalog category aggregate. The slug is
// derived from the name and follows it on rename; the repository enforces
// uniqueness of both with unique indexes.
package category
