package availability

import "sort"

// rankSlots orders slots for the caller: slots fully inside the requested
// window first, then the rest, each group ascending by price. Without a
// window the ranking is price-ascending only. The sort is stable so equal
// slots keep their provider order.
func rankSlots(slots []Slot, window *TimeWindow) {
	sort.SliceStable(slots, func(i, j int) bool {
		if window != nil {
			inI := within(slots[i], *window)
			inJ := within(slots[j], *window)
			if inI != inJ {
				return inI
			}
		}
		return slots[i].Price < slots[j].Price
	})
}

// within reports whether the slot is fully contained in the window,
// comparing the HH:MM portion of its ISO timestamps lexically.
func within(slot Slot, window TimeWindow) bool {
	start := clockPart(slot.Start, "00:00")
	end := clockPart(slot.End, "23:59")
	return start >= window.Start && end <= window.End
}

func clockPart(ts, fallback string) string {
	if len(ts) >= 16 {
		return ts[11:16]
	}
	return fallback
}
