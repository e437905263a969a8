package services

import (
	"fmt"
	"time"
)

// formatQuotationNumber constructs the quotation number string from its
// components. Sequences past 9999 widen to 5+ digits rather than wrap or
// truncate, so numbers stay unique within a year at any volume.
func formatQuotationNumber(year, sequence int) string {
	return fmt.Sprintf("QUO-%04d-%04d", year, sequence)
}

// GenerateQuotationNumber creates the next quotation number for the
// calendar year of the reference date, given how many quotations already
// exist for that year. Count 0 yields sequence 0001.
// Format: QUO-{year}-{sequence}
//   - year: 4-digit calendar year of the reference date
//   - sequence: existing count + 1, zero-padded to 4 digits
//
// Two distinct counts in the same year never collide. Uniqueness across
// years is the caller's job: the count must be scoped to the year (it
// resets every January).
func GenerateQuotationNumber(existingCount int, now time.Time) string {
	return formatQuotationNumber(now.Year(), existingCount+1)
}

// QuotationNumberPrefix returns the "QUO-{year}-" prefix for the given
// date, used to count a year's quotations when generating the next number.
func QuotationNumberPrefix(now time.Time) string {
	return fmt.Sprintf("QUO-%04d-", now.Year())
}
