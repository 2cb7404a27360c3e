package fsm

import (
	"math"
	"math/rand/v2"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/ent"
	"github.com/wordwheel/wheelbot/ent/participant"
)

func TestMaskWord(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		revealed string
		want     string
	}{
		{"nothing revealed", "КОТ", "", "_ _ _"},
		{"partially revealed", "КАРАВАН", "АК", "К А _ А _ А _"},
		{"fully revealed", "КОТ", "ТОК", "К О Т"},
		{"case insensitive both ways", "кот", "о", "_ О _"},
		{"non-letters stay masked", "НЬЮ-ЙОРК", "нйорк", "Н _ _ _ Й О Р К"},
		{"empty word", "", "АБВ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskWord(tt.word, tt.revealed))
		})
	}
}

func TestMaskWord_Length(t *testing.T) {
	// Spaced letters: 2n-1 runes for an n-rune answer.
	masked := MaskWord("КАРАВАН", "АК")
	assert.Equal(t, 2*utf8.RuneCountInString("КАРАВАН")-1, utf8.RuneCountInString(masked))
}

func TestIsWordGuessed(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		revealed string
		want     bool
	}{
		{"all letters named", "КОТ", "КОТ", true},
		{"letter missing", "КОТ", "КО", false},
		{"nothing named", "КОТ", "", false},
		{"repeats need one naming", "КАРАВАН", "КАРВН", true},
		{"non-letters never block", "НЬЮ-ЙОРК", "НЬЮЙОРК", true},
		{"case insensitive", "кот", "КОТ", true},
		{"extra revealed letters are fine", "КОТ", "АБВКОТ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWordGuessed(tt.word, tt.revealed))
		})
	}
}

func TestWheel_SingleSector(t *testing.T) {
	w := NewWheel([]int{100}, []int{1}, rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 20; i++ {
		assert.Equal(t, 100, w.Spin())
	}
}

func TestWheel_WeightsHonored(t *testing.T) {
	// A zero-weight sector must never come up.
	w := NewWheel([]int{0, 100}, []int{0, 5}, rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 200; i++ {
		assert.Equal(t, 100, w.Spin())
	}
}

func TestWheel_MismatchedWeightsFallBackToUniform(t *testing.T) {
	w := NewWheel([]int{1, 2, 3}, []int{1}, rand.New(rand.NewPCG(1, 2)))
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		v := w.Spin()
		assert.Contains(t, []int{1, 2, 3}, v)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestWheel_DefaultSectors(t *testing.T) {
	sectors := []int{0, 100, 250, 350, 400, 450, 500, 600, 750, 1000}
	weights := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	w := NewWheel(sectors, weights, rand.New(rand.NewPCG(7, 7)))
	for i := 0; i < 100; i++ {
		assert.Contains(t, sectors, w.Spin())
	}
}

func TestWheel_EmptySectors(t *testing.T) {
	w := NewWheel(nil, nil, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, 0, w.Spin())
}

func TestWheel_UniformDistribution(t *testing.T) {
	sectors := []int{0, 100, 250, 350, 400, 450, 500, 600, 750, 1000}
	w := NewWheel(sectors, nil, rand.New(rand.NewPCG(11, 13)))

	const spins = 10000
	counts := map[int]int{}
	for i := 0; i < spins; i++ {
		counts[w.Spin()]++
	}

	// Binomial count per sector: mean n/k, σ = √(n·p·(1-p)). The seeded
	// generator makes the counts reproducible.
	mean := float64(spins) / float64(len(sectors))
	p := 1 / float64(len(sectors))
	sigma := math.Sqrt(float64(spins) * p * (1 - p))
	for _, s := range sectors {
		assert.InDelta(t, mean, float64(counts[s]), 3*sigma, "sector %d", s)
	}
}

func testPlayer(id, turnOrder int, state participant.State) *ent.Participant {
	return &ent.Participant{ID: id, TurnOrder: turnOrder, State: state}
}

func TestNextWaiting(t *testing.T) {
	t.Run("picks the next seat", func(t *testing.T) {
		players := []*ent.Participant{
			testPlayer(1, 0, participant.StateActiveTurn),
			testPlayer(2, 1, participant.StateWaiting),
			testPlayer(3, 2, participant.StateWaiting),
		}
		next := nextWaiting(players, players[0])
		require.NotNil(t, next)
		assert.Equal(t, 2, next.ID)
	})

	t.Run("wraps around", func(t *testing.T) {
		players := []*ent.Participant{
			testPlayer(1, 0, participant.StateWaiting),
			testPlayer(2, 1, participant.StateLoser),
			testPlayer(3, 2, participant.StateActiveTurn),
		}
		next := nextWaiting(players, players[2])
		require.NotNil(t, next)
		assert.Equal(t, 1, next.ID)
	})

	t.Run("skips eliminated seats", func(t *testing.T) {
		players := []*ent.Participant{
			testPlayer(1, 0, participant.StateActiveTurn),
			testPlayer(2, 1, participant.StateLeft),
			testPlayer(3, 2, participant.StateWaiting),
		}
		next := nextWaiting(players, players[0])
		require.NotNil(t, next)
		assert.Equal(t, 3, next.ID)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		players := []*ent.Participant{
			testPlayer(3, 2, participant.StateWaiting),
			testPlayer(1, 0, participant.StateActiveTurn),
			testPlayer(2, 1, participant.StateWaiting),
		}
		next := nextWaiting(players, players[1])
		require.NotNil(t, next)
		assert.Equal(t, 2, next.ID)
	})

	t.Run("rotates past a current player already eliminated", func(t *testing.T) {
		players := []*ent.Participant{
			testPlayer(1, 0, participant.StateLoser),
			testPlayer(2, 1, participant.StateWaiting),
		}
		next := nextWaiting(players, players[0])
		require.NotNil(t, next)
		assert.Equal(t, 2, next.ID)
	})

	t.Run("nobody left", func(t *testing.T) {
		players := []*ent.Participant{
			testPlayer(1, 0, participant.StateActiveTurn),
			testPlayer(2, 1, participant.StateLoser),
			testPlayer(3, 2, participant.StateLeft),
		}
		assert.Nil(t, nextWaiting(players, players[0]))
	})

	t.Run("empty field", func(t *testing.T) {
		assert.Nil(t, nextWaiting(nil, testPlayer(1, 0, participant.StateActiveTurn)))
	})
}

func TestRandomWaiting(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("only waiting players are eligible", func(t *testing.T) {
		players := []*ent.Participant{
			testPlayer(1, 0, participant.StateLoser),
			testPlayer(2, 1, participant.StateWaiting),
		}
		for i := 0; i < 20; i++ {
			p := randomWaiting(players, rng)
			require.NotNil(t, p)
			assert.Equal(t, 2, p.ID)
		}
	})

	t.Run("covers all candidates", func(t *testing.T) {
		players := []*ent.Participant{
			testPlayer(1, 0, participant.StateWaiting),
			testPlayer(2, 1, participant.StateWaiting),
		}
		seen := map[int]bool{}
		for i := 0; i < 100; i++ {
			seen[randomWaiting(players, rng).ID] = true
		}
		assert.Len(t, seen, 2)
	})

	t.Run("nobody waiting", func(t *testing.T) {
		assert.Nil(t, randomWaiting([]*ent.Participant{testPlayer(1, 0, participant.StateWinner)}, rng))
	})
}
