package generation

import (
	"errors"
	"time"
)

// Bucket is the two-valued generation classification stored on a user.
type Bucket string

const (
	Young  Bucket = "young"
	Senior Bucket = "senior"
)

// MinAge is the registration floor in whole years.
const MinAge = 13

// seniorCutoff: strictly older than this is senior, at most this is young.
const seniorCutoff = 60

var ErrTooYoung = errors.New("must be at least 13 years old to register")

// Age returns the whole-year age at the given date. The calendar-year
// difference is reduced by one when today's month/day precedes the birth
// month/day.
func Age(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// Classify maps a birth date to a generation bucket. Ages below MinAge are
// unregistrable and return ErrTooYoung; exactly 60 is still young.
func Classify(birthDate, today time.Time) (Bucket, error) {
	age := Age(birthDate, today)
	if age < MinAge {
		return "", ErrTooYoung
	}
	if age > seniorCutoff {
		return Senior, nil
	}
	return Young, nil
}
