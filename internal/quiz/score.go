package quiz

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidOption is returned for an answer outside {0, 1}.
	ErrInvalidOption = errors.New("invalid option index")
	// ErrTooManyAnswers is returned when more answers than questions are given.
	ErrTooManyAnswers = errors.New("too many answers")
)

const selectedPoints = 25

type spill struct {
	trait  Trait
	points int
}

// spillover credits related traits whenever a trait is selected.
var spillover = map[Trait][2]spill{
	Decoder:     {{Illuminator, 8}, {Explorer, 5}},
	AvantGarde:  {{Visionary, 8}, {Explorer, 5}},
	Visionary:   {{AvantGarde, 8}, {Illuminator, 5}},
	Illuminator: {{Decoder, 8}, {Visionary, 5}},
	Explorer:    {{Decoder, 5}, {Visionary, 5}},
}

// Result is a completed classification.
type Result struct {
	Primary   Trait         `json:"primary"`
	Secondary Trait         `json:"secondary"`
	Scores    map[Trait]int `json:"scores"`
	Raw       map[Trait]int `json:"raw"`
}

// Ranked returns all traits ordered by score, highest first. Equal scores
// keep declaration order.
func (r *Result) Ranked() []Trait {
	out := Traits()
	sort.SliceStable(out, func(i, j int) bool {
		return r.Raw[out[i]] > r.Raw[out[j]]
	})
	return out
}

// Others returns the ranked traits excluding the primary and secondary.
func (r *Result) Others() []Trait {
	var out []Trait
	for _, t := range r.Ranked() {
		if t != r.Primary && t != r.Secondary {
			out = append(out, t)
		}
	}
	return out
}

// Total returns the sum of the rounded percentages. Rounding may leave it
// one or two points away from 100.
func (r *Result) Total() int {
	sum := 0
	for _, v := range r.Scores {
		sum += v
	}
	return sum
}

// Validate checks that answers are option indices and fit the question list.
func Validate(answers []int) error {
	if len(answers) > QuestionCount {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyAnswers, len(answers), QuestionCount)
	}
	for i, a := range answers {
		if a != 0 && a != 1 {
			return fmt.Errorf("%w: answer %d is %d", ErrInvalidOption, i+1, a)
		}
	}
	return nil
}

// RawScores accumulates points for each trait. Answers are positional:
// answers[i] is the option picked for question i.
func RawScores(answers []int) (map[Trait]int, error) {
	if err := Validate(answers); err != nil {
		return nil, err
	}
	scores := make(map[Trait]int, len(traitOrder))
	for _, t := range traitOrder {
		scores[t] = 0
	}
	for i, a := range answers {
		selected := questions[i].Traits[a]
		scores[selected] += selectedPoints
		for _, s := range spillover[selected] {
			scores[s.trait] += s.points
		}
	}
	return scores, nil
}

// Score classifies a set of answers. Percentages are rounded half away
// from zero per trait and are not renormalised.
func Score(answers []int) (*Result, error) {
	raw, err := RawScores(answers)
	if err != nil {
		return nil, err
	}

	ranked := Traits()
	sort.SliceStable(ranked, func(i, j int) bool {
		return raw[ranked[i]] > raw[ranked[j]]
	})

	total := 0
	for _, v := range raw {
		total += v
	}

	pct := make(map[Trait]int, len(raw))
	for _, t := range traitOrder {
		if total == 0 {
			pct[t] = 0
			continue
		}
		pct[t] = int(math.Floor(float64(raw[t])/float64(total)*100 + 0.5))
	}

	return &Result{
		Primary:   ranked[0],
		Secondary: ranked[1],
		Scores:    pct,
		Raw:       raw,
	}, nil
}
