// Package format renders calculation figures for people.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"rpa-roi/domain"
)

// Unit selects how currency amounts are displayed.
type Unit string

const (
	UnitWon     Unit = "won"     // 1,234,567원
	UnitMillion Unit = "million" // 1.2백만원
	UnitKorean  Unit = "korean"  // largest of 억 / 천만 / 백만
)

var (
	hundredMillion = decimal.NewFromInt(100_000_000)
	tenMillion     = decimal.NewFromInt(10_000_000)
	million        = decimal.NewFromInt(1_000_000)
	tenThousand    = decimal.NewFromInt(10_000)
)

func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case UnitWon, UnitMillion, UnitKorean:
		return u, nil
	}
	return "", fmt.Errorf("unknown currency unit %q (want won, million or korean)", s)
}

// Currency formats amount in the given unit.
func Currency(amount float64, unit Unit) string {
	d := toDecimal(amount)

	switch unit {
	case UnitMillion:
		return d.Div(million).StringFixed(1) + "백만원"
	case UnitKorean:
		switch {
		case d.GreaterThanOrEqual(hundredMillion):
			return d.Div(hundredMillion).StringFixed(1) + "억원"
		case d.GreaterThanOrEqual(tenMillion):
			return d.Div(tenMillion).StringFixed(1) + "천만원"
		case d.GreaterThanOrEqual(million):
			return d.Div(million).StringFixed(1) + "백만원"
		}
	}
	return group(d.Round(0)) + "원"
}

// DetailedKorean spells amount out in 억/천/백/만 units, e.g. "1억 4천 9백만원".
// Anything below 만 is dropped.
func DetailedKorean(amount float64) string {
	d := toDecimal(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	eok := d.Div(hundredMillion).Floor()
	rest := d.Sub(eok.Mul(hundredMillion))
	cheon := rest.Div(tenMillion).Floor()
	rest = rest.Sub(cheon.Mul(tenMillion))
	baek := rest.Div(million).Floor()
	rest = rest.Sub(baek.Mul(million))
	man := rest.Div(tenThousand).Floor()

	var parts []string
	if eok.IsPositive() {
		parts = append(parts, eok.String()+"억")
	}
	if cheon.IsPositive() {
		parts = append(parts, cheon.String()+"천")
	}
	if baek.IsPositive() {
		parts = append(parts, baek.String()+"백")
	}
	if man.IsPositive() || len(parts) == 0 {
		parts = append(parts, man.String()+"만")
	}

	if len(parts) == 1 && eok.IsPositive() {
		return sign + parts[0] + "원"
	}
	// 천 and 백 read as multiples of 만 when they close the amount.
	last := parts[len(parts)-1]
	if !strings.HasSuffix(last, "만") {
		parts[len(parts)-1] = last + "만"
	}
	return sign + strings.Join(parts, " ") + "원"
}

func Percent(v float64) string {
	return toDecimal(v).StringFixed(1) + "%"
}

// Payback describes the payback period of res.
func Payback(res domain.CalculationResults) string {
	switch res.PaybackStatus {
	case domain.PaybackImmediate:
		return "immediate"
	case domain.PaybackUnreachable:
		return "never"
	}
	return toDecimal(res.PaybackPeriodMonths).StringFixed(1) + " months"
}

// toDecimal converts v, reading non-finite values as zero.
func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// group inserts thousands separators into an integral decimal.
func group(d decimal.Decimal) string {
	s := d.Abs().String()
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
