package palette

import (
	"slices"
	"strings"
)

// Colors is the calendar palette handed out to walkers in order.
var Colors = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#EC4899",
	"#14B8A6",
	"#F97316",
	"#6366F1",
	"#84CC16",
}

// Assign returns the first palette color not present in existing. Once every color is taken it
// cycles, keyed on how many colors are already in use.
func Assign(existing []string) string {
	used := make([]string, 0, len(existing))
	for _, color := range existing {
		used = append(used, strings.ToUpper(strings.TrimSpace(color)))
	}

	for _, color := range Colors {
		if !slices.Contains(used, color) {
			return color
		}
	}

	return Colors[len(existing)%len(Colors)]
}

// AssignAll fills the blank entries of colors, treating earlier assignments as taken.
func AssignAll(colors []string) []string {
	assigned := slices.Clone(colors)

	taken := make([]string, 0, len(colors))
	for _, color := range colors {
		if color != "" {
			taken = append(taken, color)
		}
	}

	for i, color := range assigned {
		if color != "" {
			continue
		}

		assigned[i] = Assign(taken)
		taken = append(taken, assigned[i])
	}

	return assigned
}
