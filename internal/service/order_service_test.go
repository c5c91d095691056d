package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"inventra/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastNumberRepo stubs only the call nextOrderNumber makes.
type lastNumberRepo struct {
	repository.OrderRepository
	last string
}

func (r *lastNumberRepo) LastOrderNumber(context.Context) (string, error) {
	return r.last, nil
}

func TestNextOrderNumber(t *testing.T) {
	year := time.Now().Year()

	cases := []struct {
		name string
		last string
		want string
	}{
		{"empty table starts at 001", "", fmt.Sprintf("PO-%d-001", year)},
		{"continues the sequence", "PO-2025-007", fmt.Sprintf("PO-%d-008", year)},
		{"carries past three digits", "PO-2025-999", fmt.Sprintf("PO-%d-1000", year)},
		{"unparseable counter restarts", "PO-2025-abc", fmt.Sprintf("PO-%d-001", year)},
		{"malformed number restarts", "garbage", fmt.Sprintf("PO-%d-001", year)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &orderService{repo: &lastNumberRepo{last: tc.last}}
			got, err := s.nextOrderNumber(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseOrderDates(t *testing.T) {
	od, ed, err := parseOrderDates("2026-08-15", "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), od)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), ed)

	od, ed, err = parseOrderDates("2026-08-15", "")
	require.NoError(t, err)
	assert.False(t, od.IsZero())
	assert.True(t, ed.IsZero())

	_, _, err = parseOrderDates("15/08/2026", "")
	assert.Error(t, err)
}
