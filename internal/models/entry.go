// Package models defines the survey entry record as it travels between the
// remote spreadsheet endpoint, the local cache and the in-memory store.
package models

import "time"

// UseMyGP answer values as they appear on the wire.
const (
	UseYes = "yes"
	UseNo  = "no"
)

// Entry is one survey response. Entries are immutable once created: there
// are no edit or delete operations anywhere in the system.
//
// The JSON field names are fixed by the remote endpoint contract and by the
// cached payloads written by earlier versions, so they stay camelCase.
type Entry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber"`
	Profession  string `json:"profession"`
	UseMyGP     string `json:"useMyGP"`
	Reason      string `json:"reason,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// IsAdopter reports whether the respondent answered yes to using MyGP.
func (e Entry) IsAdopter() bool {
	return e.UseMyGP == UseYes
}

// CreatedAt parses the entry timestamp. The zero time is returned for
// entries whose timestamp is missing or not RFC 3339 (remote rows are passed
// through as-is, so this can happen).
func (e Entry) CreatedAt() time.Time {
	t, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
