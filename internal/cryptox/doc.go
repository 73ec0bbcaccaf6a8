// Package cryptox turns submitted passwords into their stored form and
// checks candidates against it. Three schemes exist:
//
//   - plain:    the password is stored as given (legacy behavior)
//   - bcrypt:   golang.org/x/crypto/bcrypt at DefaultCost
//   - argon2id: PHC-style string "$argon2id$v=19$m=..,t=..,p=..$salt$hash"
//
// Verify never returns an error: a malformed stored value simply fails.
package cryptox
