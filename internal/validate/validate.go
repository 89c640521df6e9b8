// Package validate holds the input checks applied before anything reaches
// storage or aggregation. All functions are pure and fail closed.
package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/timecard-app/timecard/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MaxProjectNameLength bounds a trimmed project name.
const MaxProjectNameLength = 100

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date reports whether s is an ISO YYYY-MM-DD string naming a real calendar
// date. "2024-02-30" and "2024-13-01" are rejected even though they match the
// shape.
func Date(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// MonthLayout is the wire format for report months.
const MonthLayout = "2006-01"

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month reports whether s is a real YYYY-MM month.
func Month(s string) bool {
	if !monthRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// Minutes reports whether m is a bookable amount: positive and at most one
// calendar day.
func Minutes(m int) bool {
	return m > 0 && m <= domain.MaxEntryMinutes
}

// ProjectName reports whether the trimmed name has between 1 and 100
// characters.
func ProjectName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= 1 && n <= MaxProjectNameLength
}
