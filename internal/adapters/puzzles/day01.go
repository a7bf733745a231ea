package puzzles

import (
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/zerr"
)

const expenseTarget = 2020

// ReportRepairPair finds the two expense entries summing to 2020 and returns their product.
func ReportRepairPair(input string, _ ports.Probe) (string, error) {
	values, err := parseInts(input)
	if err != nil {
		return "", err
	}

	seen := make(map[int64]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[expenseTarget-v]; ok {
			return itoa(v * (expenseTarget - v)), nil
		}
		seen[v] = struct{}{}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrNoSolution, "no entries sum to 2020"), "entries", len(values))
}

// ReportRepairTriple finds the three expense entries summing to 2020 and returns their product.
func ReportRepairTriple(input string, _ ports.Probe) (string, error) {
	values, err := parseInts(input)
	if err != nil {
		return "", err
	}

	for i := range values {
		seen := make(map[int64]struct{}, len(values))
		rest := expenseTarget - values[i]
		for _, v := range values[i+1:] {
			if _, ok := seen[rest-v]; ok {
				return itoa(values[i] * v * (rest - v)), nil
			}
			seen[v] = struct{}{}
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrNoSolution, "no entries sum to 2020"), "entries", len(values))
}
