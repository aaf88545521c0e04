package interval

// Overlaps reports whether a and b share any instant. Intervals on different
// dates never overlap; intervals that only touch (a.end == b.start) do not either.
func Overlaps(a, b Interval) bool {
	return a.date.Equal(b.date) && a.start < b.end && b.start < a.end
}

func HasConflict(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if Overlaps(candidate, e) {
			return true
		}
	}
	return false
}

// FirstConflict returns the first item whose interval overlaps candidate.
func FirstConflict[T any](candidate Interval, items []T, intervalOf func(T) Interval) (T, bool) {
	for _, item := range items {
		if Overlaps(candidate, intervalOf(item)) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
