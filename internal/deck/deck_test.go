package deck

import (
	"strings"
	"testing"

	"github.com/mwhitt/warsearch/internal/randutil"
)

// validSample is a well-formed deal: four of each face up front, dashes after.
const validSample = "JJJJQQQQKKKKAAAA------------------------------------"

func TestShuffleProducesValidDecks(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 100; seed++ {
		d := Shuffle(randutil.New(seed))
		if !d.Valid() {
			t.Fatalf("Shuffle(seed=%d) produced invalid deck %s", seed, d)
		}
	}
}

func TestShuffleRoundTripsThroughParse(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 20; seed++ {
		d := Shuffle(randutil.New(seed))
		if got := Parse(d.String()); got != d {
			t.Errorf("round trip mismatch: %s != %s", got, d)
		}
	}
}

func TestParseRendersCanonically(t *testing.T) {
	t.Parallel()
	if len(validSample) != Size {
		t.Fatalf("sample has %d characters, want %d", len(validSample), Size)
	}
	d := Parse(validSample)
	if d.String() != validSample {
		t.Errorf("String() = %q, want %q", d.String(), validSample)
	}
	if !d.Valid() {
		t.Errorf("sample deck should be valid")
	}
}

func TestParseShortInputPadsWithNone(t *testing.T) {
	t.Parallel()
	d := Parse("JQ")
	if d[0] != Jack || d[1] != Queen {
		t.Errorf("prefix not parsed: %s", d)
	}
	for i := 2; i < Size; i++ {
		if d[i] != None {
			t.Fatalf("slot %d = %v, want None", i, d[i])
		}
	}
}

func TestParseLongInputTruncates(t *testing.T) {
	t.Parallel()
	long := validSample + "AAAA"
	if Parse(long) != Parse(validSample) {
		t.Error("input beyond 52 characters should be ignored")
	}
}

func TestParseUnknownCharactersBecomeNone(t *testing.T) {
	t.Parallel()
	d := Parse("xJ7q") // lowercase q is not a face card
	want := [4]Card{None, Jack, None, None}
	for i, c := range want {
		if d[i] != c {
			t.Errorf("slot %d = %v, want %v", i, d[i], c)
		}
	}
}

func TestValidRejectsBadCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"all non-face", strings.Repeat("-", Size), false},
		{"five jacks", "JJJJJQQQQKKKKAAAA" + strings.Repeat("-", 35), false},
		{"missing ace", "JJJJQQQQKKKKAAA" + strings.Repeat("-", 37), false},
		{"valid", validSample, true},
		{"empty string", "", false},
	}
	for _, tt := range tests {
		if got := Parse(tt.in).Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCardPenalty(t *testing.T) {
	t.Parallel()
	penalties := map[Card]int{None: 0, Jack: 1, Queen: 2, King: 3, Ace: 4}
	for c, want := range penalties {
		if c.Penalty() != want {
			t.Errorf("%s.Penalty() = %d, want %d", c, c.Penalty(), want)
		}
	}
	if None.Face() {
		t.Error("None should not be a face card")
	}
	if !Ace.Face() {
		t.Error("Ace should be a face card")
	}
}
