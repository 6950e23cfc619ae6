package palette_test

import (
	"petcare/shared/palette"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing []string
		expected string
	}{
		{
			name:     "empty",
			existing: nil,
			expected: palette.Colors[0],
		},
		{
			name:     "skips used colors case insensitively",
			existing: []string{"#3b82f6", " #10B981 "},
			expected: palette.Colors[2],
		},
		{
			name:     "fills gap",
			existing: []string{palette.Colors[0], palette.Colors[2]},
			expected: palette.Colors[1],
		},
		{
			name:     "cycles when exhausted",
			existing: append(append([]string{}, palette.Colors...), palette.Colors[0]),
			expected: palette.Colors[1],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, palette.Assign(tt.existing))
		})
	}
}

func TestAssign_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	existing := []string{"#3b82f6"}

	palette.Assign(existing)

	assert.Equal(t, []string{"#3b82f6"}, existing)
}

func TestAssignAll(t *testing.T) {
	t.Parallel()

	colors := []string{"", palette.Colors[0], ""}

	assigned := palette.AssignAll(colors)

	assert.Equal(t, []string{palette.Colors[1], palette.Colors[0], palette.Colors[2]}, assigned)
	assert.Equal(t, []string{"", palette.Colors[0], ""}, colors)
}
