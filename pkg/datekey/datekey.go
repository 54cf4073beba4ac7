// Package datekey implements the date-based credential scheme used by the
// dashboard: passwords are calendar dates written as DDMMYYYY, with any
// separator the user likes. Normalize strips the separators down to the raw
// 8-digit key; IsValidCalendarDate additionally checks the digits name a
// real date.
package datekey

import (
	"errors"
	"strings"
	"time"
)

// KeyLength is the exact digit count of a normalized date key (DDMMYYYY).
const KeyLength = 8

// Year bounds accepted by IsValidCalendarDate, both inclusive.
const (
	MinYear = 1900
	MaxYear = 2100
)

// ErrFormat is returned by Normalize when the input does not reduce to
// exactly KeyLength digits.
var ErrFormat = errors.New("datekey: input does not reduce to 8 digits")

// Normalize strips every non-digit rune from raw and returns the remaining
// digit string. It fails with ErrFormat unless exactly 8 digits remain.
// The digits are returned in their original order: this canonicalizes
// separators ("31/12/2024", "31-12-2024" and "31122024" are equivalent),
// it never reorders day and month.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	b.Grow(KeyLength)
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() != KeyLength {
		return "", ErrFormat
	}
	return b.String(), nil
}

// IsValidCalendarDate reports whether raw normalizes to a key naming a real
// calendar date between MinYear and MaxYear. It fails closed: any format
// error yields false, never an error.
//
// Digits are read positionally as day [0,2), month [2,4), year [4,8); a key
// in month-day order is not auto-corrected. Validity is checked by round
// trip: time.Date normalizes overflowing components (31 April becomes
// 1 May), so the reconstructed day/month/year only match the parsed ones
// when the components named an actual date.
func IsValidCalendarDate(raw string) bool {
	key, err := Normalize(raw)
	if err != nil {
		return false
	}

	day := atoi2(key[0:2])
	month := atoi2(key[2:4])
	year := atoi2(key[4:6])*100 + atoi2(key[6:8])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Day() == day &&
		d.Month() == time.Month(month) &&
		d.Year() == year &&
		year >= MinYear && year <= MaxYear
}

// atoi2 converts a 2-digit ASCII string; inputs are pre-validated digits.
func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
