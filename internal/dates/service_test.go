package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	// a Tuesday
	ref := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	svc := NewService()

	tests := []struct {
		phrase string
		want   string
	}{
		{"tomorrow", "2025-07-02"},
		{"today", "2025-07-01"},
		{"in 3 days", "2025-07-04"},
		{"july 15", "2025-07-15"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := svc.Resolve(tt.phrase, ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_UnrecognizablePhrase(t *testing.T) {
	svc := NewService()

	_, err := svc.Resolve("the usual", time.Now())
	assert.ErrorIs(t, err, ErrUnresolved)

	_, err = svc.Resolve("", time.Now())
	assert.ErrorIs(t, err, ErrUnresolved)
}
