// Package user contains the account aggregate: credentials, role, and the
// password-reset token lifecycle. Passwords never leave this package in
// plaintext; only bcrypt hashes are stored or compared.
package user
