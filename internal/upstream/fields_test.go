package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickString(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		aliases []string
		want    string
		wantOK  bool
	}{
		{
			name:    "first alias wins",
			payload: map[string]any{"hold_id": "H1", "holdId": "H2", "id": "H3"},
			aliases: AliasHoldID,
			want:    "H1",
			wantOK:  true,
		},
		{
			name:    "falls through to later alias",
			payload: map[string]any{"id": "H3"},
			aliases: AliasHoldID,
			want:    "H3",
			wantOK:  true,
		},
		{
			name:    "numeric id is stringified",
			payload: map[string]any{"booking_id": float64(12345)},
			aliases: AliasBookingID,
			want:    "12345",
			wantOK:  true,
		},
		{
			name:    "empty string does not count as present",
			payload: map[string]any{"hold_id": "", "id": "H3"},
			aliases: AliasHoldID,
			want:    "H3",
			wantOK:  true,
		},
		{
			name:    "nil value is skipped",
			payload: map[string]any{"hold_id": nil, "holdId": "H2"},
			aliases: AliasHoldID,
			want:    "H2",
			wantOK:  true,
		},
		{
			name:    "nothing present",
			payload: map[string]any{"unrelated": "x"},
			aliases: AliasHoldID,
			want:    "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PickString(tt.payload, tt.aliases)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPickFloat(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		aliases []string
		want    float64
		wantOK  bool
	}{
		{
			name:    "numeric value",
			payload: map[string]any{"price_total": 349.5},
			aliases: AliasPriceTotal,
			want:    349.5,
			wantOK:  true,
		},
		{
			name:    "string-encoded number is tolerated",
			payload: map[string]any{"total": "400"},
			aliases: AliasPriceTotal,
			want:    400,
			wantOK:  true,
		},
		{
			name:    "camelCase alias",
			payload: map[string]any{"depositDue": float64(100)},
			aliases: AliasDepositDue,
			want:    100,
			wantOK:  true,
		},
		{
			name:    "absent",
			payload: map[string]any{},
			aliases: AliasPriceTotal,
			want:    0,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PickFloat(tt.payload, tt.aliases)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPickBool(t *testing.T) {
	got, ok := PickBool(map[string]any{"confirmed": true}, AliasConfirmed)
	assert.True(t, ok)
	assert.True(t, got)

	_, ok = PickBool(map[string]any{"confirmed": "yes"}, AliasConfirmed)
	assert.False(t, ok)
}
