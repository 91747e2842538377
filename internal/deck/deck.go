// Package deck models the 52-slot deals searched by warsearch: four each of
// Jack, Queen, King and Ace scattered over 48 indistinct non-face cards.
package deck

import (
	rand "math/rand/v2"
	"strings"
)

const (
	// Size is the number of slots in a deal.
	Size = 52
	// PerFace is how many copies of each face a valid deal carries.
	PerFace = 4
)

// Deck is an ordered deal. The zero value is all non-face cards, which is
// representable but not Valid.
type Deck [Size]Card

// Shuffle produces a randomly permuted deal using rejection sampling: each
// of the 16 face cards is placed at an independently chosen empty slot,
// redrawing on collisions. The caller owns rng; concurrent simulations must
// each bring their own generator.
func Shuffle(rng *rand.Rand) Deck {
	var d Deck
	for face := Jack; face <= Ace; face++ {
		for range PerFace {
			pos := rng.IntN(Size)
			for d[pos] != None {
				pos = rng.IntN(Size)
			}
			d[pos] = face
		}
	}
	return d
}

// Parse maps a deck string onto a deal. J, Q, K and A become faces, any
// other character a non-face card. Short input leaves the remaining slots
// as non-face cards; input beyond 52 characters is ignored. Parse never
// fails: malformed decks are representable and rejected by Valid instead.
func Parse(s string) Deck {
	var d Deck
	for i := 0; i < len(s) && i < Size; i++ {
		d[i] = cardOf(s[i])
	}
	return d
}

// String renders the deal in the canonical 52-character form used by the
// high-score log. It round-trips through Parse.
func (d Deck) String() string {
	var b strings.Builder
	b.Grow(Size)
	for _, c := range d {
		b.WriteString(c.String())
	}
	return b.String()
}

// Valid reports whether the deal carries exactly four of each face.
func (d Deck) Valid() bool {
	var counts [Ace + 1]int
	for _, c := range d {
		if c > Ace {
			return false
		}
		counts[c]++
	}
	for face := Jack; face <= Ace; face++ {
		if counts[face] != PerFace {
			return false
		}
	}
	return true
}
