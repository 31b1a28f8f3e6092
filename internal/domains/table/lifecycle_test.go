package table_test

import (
	"testing"

	"carre/internal/domains/table"
	"carre/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected bool
	}{
		{
			name:     "free to reserved",
			from:     constant.TableStatusFree,
			to:       constant.TableStatusReserved,
			expected: true,
		},
		{
			name:     "reserved to confirmed",
			from:     constant.TableStatusReserved,
			to:       constant.TableStatusConfirmed,
			expected: true,
		},
		{
			name:     "confirmed to paid",
			from:     constant.TableStatusConfirmed,
			to:       constant.TableStatusPaid,
			expected: true,
		},
		{
			name:     "free to confirmed skips a step",
			from:     constant.TableStatusFree,
			to:       constant.TableStatusConfirmed,
			expected: false,
		},
		{
			name:     "free to paid skips two steps",
			from:     constant.TableStatusFree,
			to:       constant.TableStatusPaid,
			expected: false,
		},
		{
			name:     "paid is terminal",
			from:     constant.TableStatusPaid,
			to:       constant.TableStatusConfirmed,
			expected: false,
		},
		{
			name:     "backward move is not allowed",
			from:     constant.TableStatusConfirmed,
			to:       constant.TableStatusReserved,
			expected: false,
		},
		{
			name:     "same state is always allowed",
			from:     constant.TableStatusReserved,
			to:       constant.TableStatusReserved,
			expected: true,
		},
		{
			name:     "unknown status has no edges",
			from:     "unknown",
			to:       constant.TableStatusReserved,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range constant.TableStatuses {
		assert.True(t, table.IsValidStatus(status), status)
	}

	assert.False(t, table.IsValidStatus("pending"))
	assert.False(t, table.IsValidStatus(""))
}
