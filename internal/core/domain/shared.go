package domain

import "fmt"

type ID string

func ValidateID(id string) bool {
	return len(id) == 24
}

// Money is an amount in minor units (cents). All arithmetic is exact.
type Money int64

func NewMoneyFromCents(cents int64) Money {
	return Money(cents)
}

func NewMoneyFromValue(value int64) Money {
	return Money(value * 100)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Multiply(quantity int) Money {
	return m * Money(quantity)
}

// Percent returns m * basisPoints / 10000, rounded half away from zero.
func (m Money) Percent(basisPoints int64) Money {
	product := int64(m) * basisPoints
	quotient, remainder := product/10000, product%10000
	if remainder*2 >= 10000 {
		quotient++
	} else if remainder*2 <= -10000 {
		quotient--
	}
	return Money(quotient)
}

func (m Money) Equals(other Money) bool {
	return m == other
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func SumMoney(values ...Money) Money {
	total := Money(0)
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

type Event interface {
	GetName() string
	GetEntityName() string
}
