package puzzles

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/advent/internal/engine/dynamic"
	"go.trai.ch/zerr"
)

const shinyGold = "shiny gold"

// bagRules maps each bag to the bags it directly contains, with their counts.
type bagRules map[string]map[string]int

func parseBagRules(input string) (bagRules, error) {
	rules := make(bagRules)
	line := 0
	for text := range strings.Lines(input) {
		line++
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		outer, body, ok := strings.Cut(text, " contain ")
		if !ok {
			return nil, invalidInput("missing \"contain\"", line, text)
		}
		bag, ok := parseBagName(outer)
		if !ok {
			return nil, invalidInput("malformed bag", line, outer)
		}
		if _, dup := rules[bag]; dup {
			return nil, invalidInput("duplicate bag", line, bag)
		}

		body, ok = strings.CutSuffix(body, ".")
		if !ok {
			return nil, invalidInput("rule must end with a period", line, text)
		}

		contents := make(map[string]int)
		if body != "no other bags" {
			for item := range strings.SplitSeq(body, ", ") {
				countText, name, ok := strings.Cut(item, " ")
				if !ok {
					return nil, invalidInput("malformed contents", line, item)
				}
				count, err := strconv.Atoi(countText)
				if err != nil || count <= 0 {
					return nil, invalidInput("bag count must be a positive integer", line, countText)
				}
				inner, ok := parseBagName(name)
				if !ok {
					return nil, invalidInput("malformed bag", line, name)
				}
				contents[inner] += count
			}
		}
		rules[bag] = contents
	}
	return rules, nil
}

// parseBagName strips the "bag" or "bags" suffix from a phrase like "light red bags".
func parseBagName(s string) (string, bool) {
	name, ok := strings.CutSuffix(s, " bags")
	if !ok {
		name, ok = strings.CutSuffix(s, " bag")
	}
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// contents returns the rule for bag, or an error if no rule mentions it.
func (r bagRules) contents(bag string) (map[string]int, error) {
	contents, ok := r[bag]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidInput, "no rule for bag"), "bag", bag)
	}
	return contents, nil
}

// HandyHaversacksContainers counts the bags that can eventually contain a shiny gold bag.
func HandyHaversacksContainers(input string, probe ports.Probe) (string, error) {
	rules, err := parseBagRules(input)
	if err != nil {
		return "", err
	}

	reaches := dynamic.TaskFunc[string, bool](func(bag string, sub dynamic.Subtasks[string, bool]) (bool, error) {
		contents, err := rules.contents(bag)
		if err != nil {
			return false, err
		}
		if _, ok := contents[shinyGold]; ok {
			return true, nil
		}
		if err := sub.PrecheckSeq(maps.Keys(contents)); err != nil {
			return false, err
		}
		for inner := range contents {
			if ok, _ := sub.Solve(inner); ok {
				return true, nil
			}
		}
		return false, nil
	})

	// One store for every bag, so each rule is evaluated once overall.
	store := dynamic.NewHashStore[string, bool]()
	opts := observe[string](probe)

	count := 0
	for _, bag := range slices.Sorted(maps.Keys(rules)) {
		if bag == shinyGold {
			continue
		}
		ok, err := dynamic.Execute(bag, reaches, store, opts...)
		if err != nil {
			return "", err
		}
		if ok {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

// HandyHaversacksContents counts the bags required inside a single shiny gold bag.
func HandyHaversacksContents(input string, probe ports.Probe) (string, error) {
	rules, err := parseBagRules(input)
	if err != nil {
		return "", err
	}

	total := dynamic.TaskFunc[string, int](func(bag string, sub dynamic.Subtasks[string, int]) (int, error) {
		contents, err := rules.contents(bag)
		if err != nil {
			return 0, err
		}
		if err := sub.PrecheckSeq(maps.Keys(contents)); err != nil {
			return 0, err
		}
		count := 0
		for inner, n := range contents {
			innerCount, _ := sub.Solve(inner)
			count += (innerCount + 1) * n
		}
		return count, nil
	})

	count, err := dynamic.Execute(shinyGold, total, dynamic.NewOrderedStoreOf[string, int](), observe[string](probe)...)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(count), nil
}
