package deck

// Card is a single slot in a deal. Only the four penalty faces matter to
// the game; every non-face card plays the same, so they all collapse to None.
type Card uint8

const (
	None Card = iota
	Jack
	Queen
	King
	Ace
)

// Face reports whether the card triggers penalty mode when played.
func (c Card) Face() bool {
	return c != None
}

// Penalty returns the number of cards the opponent must pay when this face
// is played, or 0 for a non-face card.
func (c Card) Penalty() int {
	return int(c)
}

// String returns the single-character rendering used in deck strings.
func (c Card) String() string {
	switch c {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "-"
	}
}

// cardOf maps a deck-string byte to a card. Anything unrecognized is a
// non-face card, matching the permissive parse contract.
func cardOf(b byte) Card {
	switch b {
	case 'J':
		return Jack
	case 'Q':
		return Queen
	case 'K':
		return King
	case 'A':
		return Ace
	default:
		return None
	}
}
