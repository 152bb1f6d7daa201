package shared

import (
	"time"
)

// DateRange is an inclusive [From, To] filter on a date column.
// A nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether neither bound is set
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Contains reports whether t falls within the range
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// Validate checks that From is not after To
func (r DateRange) Validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return NewDomainError("INVALID_DATE_RANGE", "开始日期不能晚于结束日期")
	}
	return nil
}
