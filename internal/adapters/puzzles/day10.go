package puzzles

import (
	"slices"

	"github.com/google/btree"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/advent/internal/engine/dynamic"
	"go.trai.ch/zerr"
)

const (
	maxJoltageGap = 3
	joltageDegree = 8
)

// joltages returns the outlet (0), every adapter and the device (highest adapter + 3), ascending.
// Adapters must be positive and distinct.
func joltages(input string) ([]int64, error) {
	values, err := parseInts(input)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, invalidInput("no adapters", 0, "")
	}
	for _, v := range values {
		if v <= 0 {
			return nil, invalidInput("adapter joltage must be positive", 0, itoa(v))
		}
	}
	values = append(values, 0)
	slices.Sort(values)
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidInput, "identical adapters"), "joltage", values[i])
		}
	}
	return append(values, values[len(values)-1]+maxJoltageGap), nil
}

// chained reports whether every step in values is within maxJoltageGap.
func chained(values []int64) bool {
	for i := 1; i < len(values); i++ {
		if values[i]-values[i-1] > maxJoltageGap {
			return false
		}
	}
	return true
}

// AdapterArrayGaps multiplies the number of 1-jolt gaps by the number of 3-jolt gaps in
// the chain that uses every adapter.
func AdapterArrayGaps(input string, _ ports.Probe) (string, error) {
	values, err := joltages(input)
	if err != nil {
		return "", err
	}

	var ones, threes int64
	for i := 1; i < len(values); i++ {
		switch gap := values[i] - values[i-1]; gap {
		case 1:
			ones++
		case 2:
		case 3:
			threes++
		default:
			return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidInput, "gap between adapters is too large"), "from", values[i-1]), "to", values[i])
		}
	}
	return itoa(ones * threes), nil
}

// arrangementGoal is a decision about one adapter: whether it is in the chain,
// given prev, the highest adapter below it that is.
type arrangementGoal struct {
	Joltage int64
	Present bool
	Prev    int64
}

// last returns the highest adapter in the chain so far.
func (g arrangementGoal) last() int64 {
	if g.Present {
		return g.Joltage
	}
	return g.Prev
}

// next returns the goals deciding the adapter at joltage, present and absent.
func (g arrangementGoal) next(joltage int64) (present, absent arrangementGoal) {
	prev := g.last()
	return arrangementGoal{Joltage: joltage, Present: true, Prev: prev},
		arrangementGoal{Joltage: joltage, Present: false, Prev: prev}
}

// nextAdapter caches the adapter following a goal across replays.
type nextAdapter struct {
	joltage int64
	found   bool
}

// arrangements counts the chains that complete from a decided adapter.
type arrangements struct {
	adapters *btree.BTreeG[int64]
}

func (a arrangements) Solve(goal arrangementGoal, sub dynamic.Subtasks[arrangementGoal, int64], state *nextAdapter) (int64, error) {
	if !state.found {
		next, ok := a.above(goal.Joltage)
		if !ok {
			// The device is last and can never be left out.
			if goal.Present {
				return 1, nil
			}
			return 0, nil
		}
		if next-goal.last() > maxJoltageGap {
			return 0, nil
		}
		*state = nextAdapter{joltage: next, found: true}
	}

	present, absent := goal.next(state.joltage)
	withNext, err := sub.Solve(present)
	if err != nil {
		return 0, err
	}
	withoutNext, err := sub.Solve(absent)
	if err != nil {
		return 0, err
	}
	return withNext + withoutNext, nil
}

// above returns the lowest adapter strictly above joltage.
func (a arrangements) above(joltage int64) (int64, bool) {
	var next int64
	var found bool
	a.adapters.AscendGreaterOrEqual(joltage+1, func(item int64) bool {
		next, found = item, true
		return false
	})
	return next, found
}

// countArrangements decides every adapter in turn, from the outlet upwards.
func countArrangements(values []int64, probe ports.Probe) (int64, error) {
	adapters := btree.NewOrderedG[int64](joltageDegree)
	for _, v := range values {
		adapters.ReplaceOrInsert(v)
	}

	start := arrangementGoal{Joltage: 0, Present: true, Prev: 0}
	return dynamic.ExecuteStateful[arrangementGoal, int64, nextAdapter](start, arrangements{adapters: adapters},
		dynamic.NewHashStore[arrangementGoal, int64](), observe[arrangementGoal](probe)...)
}

// countWays sums, for each joltage, the ways to reach the adapters at most 3 below it.
// The store is indexed by joltage, so a chain with a gap the device can never bridge
// is answered without building it.
func countWays(values []int64, probe ports.Probe) (int64, error) {
	if !chained(values) {
		return 0, nil
	}
	device := int(values[len(values)-1])
	present := make(map[int]bool, len(values))
	for _, v := range values {
		present[int(v)] = true
	}

	ways := dynamic.TaskFunc[int, int64](func(joltage int, sub dynamic.Subtasks[int, int64]) (int64, error) {
		if joltage == 0 {
			return 1, nil
		}
		var below []int
		for gap := 1; gap <= maxJoltageGap; gap++ {
			if present[joltage-gap] {
				below = append(below, joltage-gap)
			}
		}
		if err := sub.Precheck(below...); err != nil {
			return 0, err
		}
		var total int64
		for _, j := range below {
			n, _ := sub.Solve(j)
			total += n
		}
		return total, nil
	})

	return dynamic.Execute(device, ways, dynamic.NewDenseStore[int, int64](device+1), observe[int](probe)...)
}

// AdapterArrayArrangements counts the distinct adapter chains from the outlet to the device.
// The count is computed twice, by deciding adapters and by summing reachable ways, and the
// two must agree.
func AdapterArrayArrangements(input string, probe ports.Probe) (string, error) {
	values, err := joltages(input)
	if err != nil {
		return "", err
	}

	decided, err := countArrangements(values, probe)
	if err != nil {
		return "", err
	}
	summed, err := countWays(values, probe)
	if err != nil {
		return "", err
	}
	if decided != summed {
		return "", zerr.With(zerr.With(zerr.New("arrangement counts disagree"), "decided", decided), "summed", summed)
	}
	return itoa(decided), nil
}
