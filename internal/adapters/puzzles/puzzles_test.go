package puzzles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/advent/internal/adapters/puzzles"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/advent/internal/engine/dynamic"
	"go.trai.ch/zerr"
)

const expenseReport = `1721
979
366
299
675
1456
`

const bagRules = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`

const nestedBagRules = `shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain 2 dark green bags.
dark green bags contain 2 dark blue bags.
dark blue bags contain 2 dark violet bags.
dark violet bags contain no other bags.
`

const smallAdapters = "16\n10\n15\n5\n1\n11\n7\n19\n6\n12\n4\n"

const largeAdapters = `28
33
18
42
31
14
46
20
48
47
24
23
49
45
19
38
39
11
1
32
25
35
8
17
7
9
4
2
34
10
3
`

// countingProbe tallies executor events.
type countingProbe struct {
	attempts, descents, resolutions, overwrites int
}

func (p *countingProbe) Attempt()    { p.attempts++ }
func (p *countingProbe) Descend()    { p.descents++ }
func (p *countingProbe) Resolve(int) { p.resolutions++ }
func (p *countingProbe) Overwrite()  { p.overwrites++ }

func TestPuzzles_Samples(t *testing.T) {
	tests := []struct {
		name  string
		solve puzzles.SolveFunc
		input string
		want  string
	}{
		{name: "day 1 part 1", solve: puzzles.ReportRepairPair, input: expenseReport, want: "514579"},
		{name: "day 1 part 2", solve: puzzles.ReportRepairTriple, input: expenseReport, want: "241861950"},
		{name: "day 7 part 1", solve: puzzles.HandyHaversacksContainers, input: bagRules, want: "4"},
		{name: "day 7 part 2", solve: puzzles.HandyHaversacksContents, input: bagRules, want: "32"},
		{name: "day 7 part 2 nested", solve: puzzles.HandyHaversacksContents, input: nestedBagRules, want: "126"},
		{name: "day 10 part 1 small", solve: puzzles.AdapterArrayGaps, input: smallAdapters, want: "35"},
		{name: "day 10 part 1 large", solve: puzzles.AdapterArrayGaps, input: largeAdapters, want: "220"},
		{name: "day 10 part 2 small", solve: puzzles.AdapterArrayArrangements, input: smallAdapters, want: "8"},
		{name: "day 10 part 2 large", solve: puzzles.AdapterArrayArrangements, input: largeAdapters, want: "19208"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.solve(tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPuzzles_ProbeReceivesExecutorEvents(t *testing.T) {
	probe := &countingProbe{}

	got, err := puzzles.HandyHaversacksContents(bagRules, probe)
	require.NoError(t, err)
	assert.Equal(t, "32", got)

	// shiny gold, dark olive, vibrant plum, faded blue, dotted black.
	assert.Equal(t, 5, probe.resolutions)
	assert.Positive(t, probe.descents)
	assert.Greater(t, probe.attempts, probe.resolutions)
	assert.Zero(t, probe.overwrites)
}

func TestPuzzles_ContainersReuseStore(t *testing.T) {
	probe := &countingProbe{}

	_, err := puzzles.HandyHaversacksContainers(bagRules, probe)
	require.NoError(t, err)

	// Each of the eight bags other than shiny gold is executed as an initial goal,
	// so bags solved earlier are recorded again.
	assert.Equal(t, 8, probe.resolutions-probe.overwrites)
}

func TestPuzzles_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		solve puzzles.SolveFunc
		input string
		line  int
	}{
		{name: "day 1 not a number", solve: puzzles.ReportRepairPair, input: "1721\nabc\n", line: 2},
		{name: "day 7 missing contain", solve: puzzles.HandyHaversacksContents, input: "shiny gold bags hold things.\n", line: 1},
		{name: "day 7 missing period", solve: puzzles.HandyHaversacksContents, input: "shiny gold bags contain no other bags\n", line: 1},
		{name: "day 7 bad count", solve: puzzles.HandyHaversacksContents, input: "shiny gold bags contain zero dark red bags.\n", line: 1},
		{
			name:  "day 7 duplicate bag",
			solve: puzzles.HandyHaversacksContents,
			input: "shiny gold bags contain no other bags.\nshiny gold bags contain no other bags.\n",
			line:  2,
		},
		{name: "day 10 not a number", solve: puzzles.AdapterArrayArrangements, input: "1\n2\nx\n", line: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.solve(tt.input, nil)
			require.ErrorIs(t, err, domain.ErrInvalidInput)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.line, zErr.Metadata()["line"])
		})
	}
}

func TestPuzzles_NoSolution(t *testing.T) {
	_, err := puzzles.ReportRepairPair("1\n2\n3\n", nil)
	require.ErrorIs(t, err, domain.ErrNoSolution)

	_, err = puzzles.ReportRepairTriple("1\n2\n3\n", nil)
	require.ErrorIs(t, err, domain.ErrNoSolution)
}

func TestPuzzles_CyclicBagRules(t *testing.T) {
	input := "shiny gold bags contain 1 dark red bag.\n" +
		"dark red bags contain 1 pale blue bag.\n" +
		"pale blue bags contain 1 dark red bag.\n"

	_, err := puzzles.HandyHaversacksContents(input, nil)
	require.ErrorIs(t, err, dynamic.ErrCircularDependency)

	var cycle *dynamic.CircularDependencyError[string]
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, "dark red -> pale blue -> dark red", cycle.Cycle())
}

func TestPuzzles_UnknownBag(t *testing.T) {
	_, err := puzzles.HandyHaversacksContents("shiny gold bags contain 1 dark red bag.\n", nil)
	require.ErrorIs(t, err, dynamic.ErrTaskFailed)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdapterArrayGaps_Errors(t *testing.T) {
	_, err := puzzles.AdapterArrayGaps("1\n1\n", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "identical adapters")

	_, err = puzzles.AdapterArrayGaps("1\n8\n", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "too large")

	_, err = puzzles.AdapterArrayGaps("", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdapterArrayArrangements_Unreachable(t *testing.T) {
	got, err := puzzles.AdapterArrayArrangements("10\n13\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = puzzles.AdapterArrayArrangements("1\n2\n1000000000000000\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	_, err = puzzles.AdapterArrayArrangements("-1\n2\n", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdapterArray_PartsShareValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{name: "duplicate adapters", input: "1\n2\n2\n", msg: "identical adapters"},
		{name: "zero joltage", input: "0\n1\n", msg: "must be positive"},
		{name: "negative joltage", input: "-2\n1\n", msg: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, solve := range []func(string, ports.Probe) (string, error){
				puzzles.AdapterArrayGaps,
				puzzles.AdapterArrayArrangements,
			} {
				_, err := solve(tt.input, nil)
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	registry, err := puzzles.NewRegistry(puzzles.Builtin()...)
	require.NoError(t, err)

	all := registry.All()
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].ID().Less(all[i].ID()))
	}

	p, err := registry.Lookup(domain.PuzzleID{Day: 7, Part: 2})
	require.NoError(t, err)
	assert.Equal(t, "Handy Haversacks", p.Title())

	got, err := p.Solve(bagRules, nil)
	require.NoError(t, err)
	assert.Equal(t, "32", got)

	_, err = registry.Lookup(domain.PuzzleID{Day: 25, Part: 1})
	require.ErrorIs(t, err, domain.ErrUnknownPuzzle)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, 25, zErr.Metadata()["day"])
	assert.Equal(t, 1, zErr.Metadata()["part"])
}

func TestRegistry_Duplicate(t *testing.T) {
	solve := func(string, ports.Probe) (string, error) { return "", nil }
	id := domain.PuzzleID{Day: 3, Part: 1}

	_, err := puzzles.NewRegistry(puzzles.New(id, "a", solve), puzzles.New(id, "b", solve))
	require.Error(t, err)
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	registry, err := puzzles.NewRegistry(puzzles.Builtin()...)
	require.NoError(t, err)

	all := registry.All()
	all[0] = nil
	assert.NotNil(t, registry.All()[0])
}
