package types

import (
	"errors"
	"fmt"
	"strings"
)

type Tenor string

const (
	OneMonth    Tenor = "1M"
	TwoMonths   Tenor = "2M"
	ThreeMonths Tenor = "3M"
	SixMonths   Tenor = "6M"
	NineMonths  Tenor = "9M"
	OneYear     Tenor = "1Y"
)

// Tenors lists every supported maturity bucket in ascending order.
var Tenors = []Tenor{OneMonth, TwoMonths, ThreeMonths, SixMonths, NineMonths, OneYear}

var TenorToDays = map[Tenor]int{
	OneMonth:    30,
	TwoMonths:   60,
	ThreeMonths: 90,
	SixMonths:   180,
	NineMonths:  270,
	OneYear:     365,
}

var TenorToMonths = map[Tenor]int{
	OneMonth:    1,
	TwoMonths:   2,
	ThreeMonths: 3,
	SixMonths:   6,
	NineMonths:  9,
	OneYear:     12,
}

var ConvertTenor = map[string]Tenor{
	"1M":  OneMonth,
	"2M":  TwoMonths,
	"3M":  ThreeMonths,
	"6M":  SixMonths,
	"9M":  NineMonths,
	"1Y":  OneYear,
	"12M": OneYear,
}

var ErrUnknownTenor = errors.New("unknown tenor")

// ParseTenor maps a quoted label such as "3m" or "1Y" onto the closed tenor set.
func ParseTenor(label string) (Tenor, error) {
	t, ok := ConvertTenor[strings.ToUpper(strings.TrimSpace(label))]
	if !ok {
		return "", fmt.Errorf("%q: %w", label, ErrUnknownTenor)
	}
	return t, nil
}

func (t Tenor) Days() int {
	return TenorToDays[t]
}

func (t Tenor) Months() int {
	return TenorToMonths[t]
}
