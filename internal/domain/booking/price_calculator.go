package booking

import (
	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
)

type PriceCalculator interface {
	CalculatePriceCents(res *resource.Resource, iv interval.Interval) int64
}

// HourlyPriceCalculator charges the resource's hourly rate pro rata by minute.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) CalculatePriceCents(res *resource.Resource, iv interval.Interval) int64 {
	return PriceForMinutes(res.PricePerHourCents(), iv.Minutes())
}

func PriceForMinutes(pricePerHourCents int64, minutes int) int64 {
	return pricePerHourCents * int64(minutes) / 60
}
