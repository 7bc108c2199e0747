package engine

import "errors"

// ErrSilentIgnore marks rejections that are part of normal play (a stale
// click, a cancelled entry). Callers drop them without reporting.
var ErrSilentIgnore = errors.New("silently ignored by turn rules")

type rejection struct{ msg string }

func (r *rejection) Error() string        { return r.msg }
func (r *rejection) Is(target error) bool { return target == ErrSilentIgnore }

var (
	ErrNotYourTurn    error = &rejection{"not your turn"}
	ErrCellAlreadySet error = &rejection{"cell already set"}
	ErrMissingValue   error = &rejection{"no value submitted"}
)

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrNotStarted           = errors.New("no game in progress")
	ErrAlreadyStarted       = errors.New("a game is already in progress")
	ErrInvalidCell          = errors.New("invalid cell")
	ErrNegativeValue        = errors.New("score cannot be negative")
	ErrValueTooLarge        = errors.New("score too large")
	ErrUnknownPlayer        = errors.New("unknown player")
)

// IsSilent reports whether err is a rejection that should be dropped.
func IsSilent(err error) bool {
	return errors.Is(err, ErrSilentIgnore)
}
