// Package numbering formats and parses the business document numbers given to
// invoices and payments: "YYYYMM-NN", one sequence per calendar month and per
// document kind.
package numbering

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/erp/erp-system/internal/domain/shared"
)

// Space is an independent sequence of document numbers
type Space string

const (
	SpaceInvoice Space = "invoice"
	SpacePayment Space = "payment"
)

// IsValid checks if the space is known
func (s Space) IsValid() bool {
	return s == SpaceInvoice || s == SpacePayment
}

// Period returns the "YYYYMM" period t falls in
func Period(t time.Time) string {
	return t.Format("200601")
}

// Format renders a document number. The sequence is zero-padded to two
// digits and simply grows wider past 99.
func Format(period string, seq int) string {
	return fmt.Sprintf("%s-%02d", period, seq)
}

// MaxSequence is the highest sequence a month may reach
const MaxSequence = 99999

// Parse splits a document number into its period and sequence.
// ok is false for numbers that do not follow the "YYYYMM-NN" shape or whose
// sequence lies outside 1..MaxSequence.
func Parse(number string) (period string, seq int, ok bool) {
	period, rest, found := splitPeriod(number)
	if !found || len(rest) < 2 || !allDigits(rest) {
		return "", 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 || n > MaxSequence {
		return "", 0, false
	}
	return period, n, true
}

// CheckNumber rejects a number that uses the "YYYYMM-" prefix of a valid
// month with a numeric sequence the counter could not follow. Free-form
// numbers are accepted unchanged.
func CheckNumber(number string) error {
	_, rest, found := splitPeriod(number)
	if !found || rest == "" || !allDigits(rest) {
		return nil
	}
	if _, _, ok := Parse(number); !ok {
		return ErrSequenceOutOfRange
	}
	return nil
}

func splitPeriod(number string) (period, rest string, ok bool) {
	period, rest, found := strings.Cut(number, "-")
	if !found || len(period) != 6 || !allDigits(period) {
		return "", "", false
	}
	if _, err := time.Parse("200601", period); err != nil {
		return "", "", false
	}
	return period, rest, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// Prefix is the common prefix of every number in period
func Prefix(period string) string {
	return period + "-"
}

// SequenceRepository stores one counter per (space, period)
type SequenceRepository interface {
	// Next atomically increments the counter and returns the new value.
	// Concurrent callers always receive distinct values.
	Next(ctx context.Context, space Space, period string) (int, error)

	// Peek returns the value Next would hand out, without consuming it
	Peek(ctx context.Context, space Space, period string) (int, error)

	// Observe raises the counter to at least seq
	Observe(ctx context.Context, space Space, period string, seq int) error
}

var (
	// ErrInvalidSpace is returned for an unknown sequence space
	ErrInvalidSpace = shared.NewDomainError("INVALID_SEQUENCE_SPACE", "Unknown document sequence")
	// ErrSequenceOutOfRange is returned for a "YYYYMM-NN" number past MaxSequence
	ErrSequenceOutOfRange = shared.NewDomainError("INVALID_DOCUMENT_NUMBER", fmt.Sprintf("单据序号须在 01 到 %d 之间", MaxSequence))
)
