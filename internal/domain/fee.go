package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeRatePerMonth is the fixed rate applied to each month of a player's
// recorded tenure when computing the contract fee.
const FeeRatePerMonth = 100_000

// MonthsBetween returns the number of whole calendar months elapsed from
// from to to. Partial months truncate down; to before from yields 0.
func MonthsBetween(from, to time.Time) int64 {
	if to.Before(from) {
		return 0
	}

	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()

	months := int64(y2-y1)*12 + int64(m2-m1)
	if d2 < d1 || (d2 == d1 && sinceMidnight(to) < sinceMidnight(from)) {
		months--
	}

	if months < 0 {
		return 0
	}

	return months
}

func sinceMidnight(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// AgeYears returns the number of whole years from birth to now, clamped to
// a minimum of 1 so the fee divisor is never zero. A player who has not
// had a birthday yet is priced as a one-year-old professional.
func AgeYears(birth, now time.Time) int64 {
	y1, m1, d1 := birth.Date()
	y2, m2, d2 := now.Date()

	years := int64(y2 - y1)
	if m2 < m1 || (m2 == m1 && d2 < d1) {
		years--
	}

	if years < 1 {
		return 1
	}

	return years
}

// ContractFee computes the fee for a transfer: tenure months at the fixed
// per-month rate, amortized by the player's age, plus the agent's
// commission percentage. The base uses truncating integer division.
func ContractFee(months, ageYears, commission int64) decimal.Decimal {
	base := decimal.NewFromInt(months * FeeRatePerMonth / ageYears)

	return base.Add(base.Mul(decimal.NewFromInt(commission)).Div(decimal.NewFromInt(100)))
}
