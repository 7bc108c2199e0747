package score

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotCombination  = errors.New("category is not a combination")
	ErrNotNumeric      = errors.New("category is not a numeric row")
	ErrInvalidFace     = errors.New("invalid die face")
	ErrInvalidCount    = errors.New("dice count must be between 1 and 6")
)

const (
	smallStraight = 20
	largeStraight = 25
)

var baseScores = map[Category]int{
	Straight:  smallStraight,
	FullHouse: 30,
	Poker:     50,
	Grande:    70,
}

// Weight of the primary and secondary face per combination.
var faceWeights = map[Category][2]int{
	FullHouse: {3, 2},
	Poker:     {4, 1},
	Grande:    {5, 0},
}

// Faces declares the dice of a combination. Primary is the triple of a full
// house, the quad of a poker, the five of a grande, or the top of a straight.
// Secondary is the pair of a full house or the kicker of a poker and is
// ignored otherwise.
type Faces struct {
	Primary   Face
	Secondary Face
}

// Combination computes the points of a combination category. A served
// combination (no reroll) doubles the base score; for straights the whole
// value doubles since no dice are added.
//
//	Straight:   (25 if Primary is HighFace else 20) × m
//	Full House: 30×m + 3×Primary + 2×Secondary
//	Poker:      50×m + 4×Primary + 1×Secondary
//	Grande:     70×m + 5×Primary
func Combination(c Category, served bool, faces Faces) (int, error) {
	base, ok := baseScores[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotCombination, c)
	}
	m := 1
	if served {
		m = 2
	}

	if c == Straight {
		if faces.Primary == HighFace {
			base = largeStraight
		}
		return base * m, nil
	}

	if !faces.Primary.Valid() {
		return 0, fmt.Errorf("%w: primary %d for %s", ErrInvalidFace, faces.Primary, c.Name())
	}
	w := faceWeights[c]
	total := base*m + w[0]*int(faces.Primary)
	if w[1] > 0 {
		if !faces.Secondary.Valid() {
			return 0, fmt.Errorf("%w: secondary %d for %s", ErrInvalidFace, faces.Secondary, c.Name())
		}
		total += w[1] * int(faces.Secondary)
	}
	return total, nil
}

// StraightScore is the direct small/large toggle. It declares the straight
// through its top face so both entry paths share Combination.
func StraightScore(large, served bool) int {
	top := FaceKing
	if large {
		top = HighFace
	}
	v, _ := Combination(Straight, served, Faces{Primary: top})
	return v
}

// CountScore is the numeric row shortcut: number of matching dice times the
// row's face value.
func CountScore(c Category, count int) (int, error) {
	face, ok := numericFaces[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotNumeric, c)
	}
	if count < 1 || count > 6 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	return count * int(face), nil
}
