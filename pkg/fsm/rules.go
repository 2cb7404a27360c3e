package fsm

import (
	"math/rand/v2"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/participant"
)

// MaskWord renders the answer for the board: revealed characters show
// uppercased, everything else as underscores, joined with single spaces.
func MaskWord(word, revealed string) string {
	set := revealedSet(revealed)
	masked := make([]string, 0, utf8.RuneCountInString(word))
	for _, r := range strings.ToUpper(word) {
		if _, ok := set[r]; ok {
			masked = append(masked, string(r))
		} else {
			masked = append(masked, "_")
		}
	}
	return strings.Join(masked, " ")
}

// IsWordGuessed reports whether every letter of the answer has been named.
// Non-letter characters (spaces, hyphens) are never named and do not block
// completion.
func IsWordGuessed(word, revealed string) bool {
	set := revealedSet(revealed)
	for _, r := range strings.ToUpper(word) {
		if !unicode.IsLetter(r) {
			continue
		}
		if _, ok := set[r]; !ok {
			return false
		}
	}
	return true
}

func revealedSet(revealed string) map[rune]struct{} {
	set := make(map[rune]struct{}, utf8.RuneCountInString(revealed))
	for _, r := range strings.ToUpper(revealed) {
		set[r] = struct{}{}
	}
	return set
}

// Wheel picks bonus sectors by weight.
type Wheel struct {
	sectors []int
	weights []int
	total   int
	rng     *rand.Rand
}

// NewWheel builds a wheel over the given sectors. Weights that are empty,
// mismatched in length, or sum to zero fall back to a uniform wheel.
func NewWheel(sectors, weights []int, rng *rand.Rand) *Wheel {
	w := &Wheel{sectors: sectors, rng: rng}
	if len(weights) != len(sectors) {
		return w
	}
	for _, wt := range weights {
		if wt < 0 {
			return w
		}
		w.total += wt
	}
	if w.total > 0 {
		w.weights = weights
	}
	return w
}

// Spin returns one sector's point value.
func (w *Wheel) Spin() int {
	if len(w.sectors) == 0 {
		return 0
	}
	if w.weights == nil {
		return w.sectors[w.rng.IntN(len(w.sectors))]
	}
	n := w.rng.IntN(w.total)
	for i, wt := range w.weights {
		n -= wt
		if n < 0 {
			return w.sectors[i]
		}
	}
	return w.sectors[len(w.sectors)-1]
}

// randomWaiting picks a uniformly random participant still waiting, or nil
// when nobody is.
func randomWaiting(players []*ent.Participant, rng *rand.Rand) *ent.Participant {
	var waiting []*ent.Participant
	for _, p := range players {
		if p.State == participant.StateWaiting {
			waiting = append(waiting, p)
		}
	}
	if len(waiting) == 0 {
		return nil
	}
	return waiting[rng.IntN(len(waiting))]
}

// nextWaiting walks the join order starting at the seat after current,
// wrapping around, and returns the first participant still waiting, or nil
// when the rotation has no one left.
func nextWaiting(players []*ent.Participant, current *ent.Participant) *ent.Participant {
	if len(players) == 0 {
		return nil
	}
	ordered := make([]*ent.Participant, len(players))
	copy(ordered, players)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].TurnOrder < ordered[j].TurnOrder })

	idx := (current.TurnOrder + 1) % len(ordered)
	for range ordered {
		if ordered[idx].State == participant.StateWaiting {
			return ordered[idx]
		}
		idx = (idx + 1) % len(ordered)
	}
	return nil
}
