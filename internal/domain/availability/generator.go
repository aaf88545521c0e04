package availability

import (
	"iter"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
)

type Slot struct {
	Interval   interval.Interval
	PriceCents int64
}

// Generate yields the free slots of res on date in chronological order.
// Slots are aligned to the opening time; a trailing window shorter than
// slotMinutes is dropped. Only bookings of res on date that occupy their
// interval exclude a slot. The sequence can be ranged over any number of times.
func Generate(res *resource.Resource, date interval.Date, existing []*booking.Booking, slotMinutes int) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if res == nil || slotMinutes <= 0 {
			return
		}

		blocked := make([]interval.Interval, 0, len(existing))
		for _, b := range existing {
			if b.ResourceID() != res.ID() || !b.Occupies() {
				continue
			}
			if iv := b.Interval(); iv.Date().Equal(date) {
				blocked = append(blocked, iv)
			}
		}

		price := booking.PriceForMinutes(res.PricePerHourCents(), slotMinutes)
		for start := res.OpensAt(); start.Add(slotMinutes) <= res.ClosesAt(); start = start.Add(slotMinutes) {
			slot, err := interval.New(date, start, start.Add(slotMinutes))
			if err != nil {
				return
			}
			if interval.HasConflict(slot, blocked) {
				continue
			}
			if !yield(Slot{Interval: slot, PriceCents: price}) {
				return
			}
		}
	}
}

func Collect(seq iter.Seq[Slot]) []Slot {
	slots := []Slot{}
	for s := range seq {
		slots = append(slots, s)
	}
	return slots
}
