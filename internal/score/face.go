package score

import (
	"fmt"
	"strconv"
	"strings"
)

// Face is the ordinal value of a poker die, 1 (nine) through 6 (ace).
type Face int

const (
	FaceNine  Face = 1
	FaceTen   Face = 2
	FaceJack  Face = 3
	FaceQueen Face = 4
	FaceKing  Face = 5
	FaceAce   Face = 6
)

// HighFace marks a large straight when declared as the primary face.
const HighFace = FaceAce

var faceLabels = [...]string{"", "9", "10", "B", "D", "K", "A"}

var numericFaces = map[Category]Face{
	Nines:  FaceNine,
	Tens:   FaceTen,
	Jacks:  FaceJack,
	Queens: FaceQueen,
	Kings:  FaceKing,
	Aces:   FaceAce,
}

// AllFaces lists the six faces from lowest to highest.
var AllFaces = []Face{FaceNine, FaceTen, FaceJack, FaceQueen, FaceKing, FaceAce}

// Valid reports whether f is within 1..6.
func (f Face) Valid() bool {
	return f >= FaceNine && f <= FaceAce
}

// Label returns the sheet label printed on the die ("9", "10", "B", "D", "K", "A").
func (f Face) Label() string {
	if !f.Valid() {
		return "?"
	}
	return faceLabels[f]
}

func (f Face) String() string { return f.Label() }

// ParseFace accepts a die label ("k", "10", "A") or, when the text is not a
// label, a plain ordinal "1".."6".
func ParseFace(s string) (Face, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	for i := 1; i < len(faceLabels); i++ {
		if faceLabels[i] == raw {
			return Face(i), nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil && Face(n).Valid() {
		return Face(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
}
