package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func slot(id, start, end string, price float64) Slot {
	return Slot{SessionID: id, Start: start, End: end, Price: price}
}

func ids(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.SessionID
	}
	return out
}

func TestRankSlots_WindowedSlotsFirstThenPrice(t *testing.T) {
	slots := []Slot{
		slot("a", "2025-07-04T09:00:00-07:00", "2025-07-04T10:45:00-07:00", 100),
		slot("b", "2025-07-04T15:00:00-07:00", "2025-07-04T16:45:00-07:00", 400),
		slot("c", "2025-07-04T13:00:00-07:00", "2025-07-04T14:45:00-07:00", 300),
		slot("d", "2025-07-04T19:00:00-07:00", "2025-07-04T20:45:00-07:00", 50),
	}
	window := &TimeWindow{Start: "12:00", End: "17:00"}

	rankSlots(slots, window)

	assert.Equal(t, []string{"c", "b", "a", "d"}, ids(slots))
}

func TestRankSlots_NoWindowSortsByPriceOnly(t *testing.T) {
	slots := []Slot{
		slot("a", "2025-07-04T09:00:00-07:00", "2025-07-04T10:45:00-07:00", 300),
		slot("b", "2025-07-04T15:00:00-07:00", "2025-07-04T16:45:00-07:00", 100),
		slot("c", "2025-07-04T13:00:00-07:00", "2025-07-04T14:45:00-07:00", 200),
	}

	rankSlots(slots, nil)

	assert.Equal(t, []string{"b", "c", "a"}, ids(slots))
}

func TestRankSlots_EqualPriceKeepsProviderOrder(t *testing.T) {
	slots := []Slot{
		slot("first", "2025-07-04T13:00:00-07:00", "2025-07-04T14:45:00-07:00", 349),
		slot("second", "2025-07-04T15:00:00-07:00", "2025-07-04T16:45:00-07:00", 349),
	}

	rankSlots(slots, nil)

	assert.Equal(t, []string{"first", "second"}, ids(slots))
}

func TestRankSlots_SlotStraddlingWindowEdgeIsOutside(t *testing.T) {
	slots := []Slot{
		// ends past the window, so not fully contained
		slot("straddle", "2025-07-04T16:00:00-07:00", "2025-07-04T18:00:00-07:00", 10),
		slot("inside", "2025-07-04T13:00:00-07:00", "2025-07-04T14:45:00-07:00", 500),
	}
	window := &TimeWindow{Start: "12:00", End: "17:00"}

	rankSlots(slots, window)

	assert.Equal(t, []string{"inside", "straddle"}, ids(slots))
}

func TestRankSlots_MalformedTimestampTreatedAsAllDay(t *testing.T) {
	slots := []Slot{
		slot("bad", "", "", 10),
		slot("inside", "2025-07-04T13:00:00-07:00", "2025-07-04T14:45:00-07:00", 500),
	}
	window := &TimeWindow{Start: "12:00", End: "17:00"}

	rankSlots(slots, window)

	// "" spans 00:00..23:59, which is never inside a narrower window
	assert.Equal(t, []string{"inside", "bad"}, ids(slots))
}
