// Package models defines client-side data models used by SmartTraffic.
package models

// UserRecord is one stored credential pair. Email is the unique,
// case-sensitive key; Password holds whatever the configured codec produced
// (the submitted password itself under the plain scheme).
type UserRecord struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
