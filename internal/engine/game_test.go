package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/eskalero/internal/score"
)

func seqIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p%d", n)
	})
}

func intp(v int) *int { return &v }

func startedGame(t *testing.T, mode Mode, names ...string) *Game {
	t.Helper()
	g := NewGame(seqIDs())
	_, err := g.Start(names, mode)
	require.NoError(t, err)
	return g
}

// fill plays every cell of every player in turn order, choosing values with fn.
func fill(t *testing.T, g *Game, fn func(seat, col int, cat score.Category) int) {
	t.Helper()
	players := g.Players()
	for col := 0; col < g.Mode().Columns(); col++ {
		for _, cat := range score.Categories {
			for seat, p := range players {
				_, err := g.Submit(p.ID, col, cat, intp(fn(seat, col, cat)))
				require.NoError(t, err)
			}
		}
	}
}

func TestStartSeatsPlayers(t *testing.T) {
	for _, mode := range []Mode{Classic, Triple} {
		t.Run(string(mode), func(t *testing.T) {
			g := NewGame(seqIDs())
			assert.Equal(t, NotStarted, g.Phase())
			assert.Equal(t, "", g.CurrentPlayerID())

			evts, err := g.Start([]string{"Anna", " Bert ", "Cleo"}, mode)
			require.NoError(t, err)
			require.Len(t, evts, 1)
			assert.Equal(t, EventGameStarted, evts[0].Type())

			players := g.Players()
			require.Len(t, players, 3)
			assert.Equal(t, "Bert", players[1].Name)
			for _, p := range players {
				assert.Len(t, p.Columns, mode.Columns())
				assert.Equal(t, len(score.Categories)*mode.Columns(), p.Open())
			}
			assert.Equal(t, "p1", g.CurrentPlayerID())
			assert.Equal(t, InProgress, g.Phase())
			assert.False(t, g.IsComplete())
		})
	}
}

func TestStartUsesUniqueIDs(t *testing.T) {
	g := NewGame()
	_, err := g.Start([]string{"Anna", "Anna"}, Classic)
	require.NoError(t, err)
	players := g.Players()
	assert.NotEmpty(t, players[0].ID)
	assert.NotEqual(t, players[0].ID, players[1].ID)
}

func TestStartRejectsInvalidConfiguration(t *testing.T) {
	cases := map[string][]string{
		"one player":  {"Solo"},
		"six players": {"a", "b", "c", "d", "e", "f"},
		"empty name":  {"Anna", "  "},
		"no players":  nil,
	}
	for name, names := range cases {
		t.Run(name, func(t *testing.T) {
			g := NewGame()
			_, err := g.Start(names, Classic)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Equal(t, NotStarted, g.Phase())
		})
	}

	g := NewGame()
	_, err := g.Start([]string{"a", "b"}, Mode("double"))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestStartTwiceNeedsReset(t *testing.T) {
	g := startedGame(t, Classic, "Anna", "Bert")
	_, err := g.Start([]string{"Cleo", "Dora"}, Classic)
	assert.ErrorIs(t, err, ErrAlreadyStarted)

	g.Reset()
	_, err = g.Start([]string{"Cleo", "Dora"}, Triple)
	require.NoError(t, err)
	assert.Equal(t, "Cleo", g.Players()[0].Name)
	assert.Equal(t, Triple, g.Mode())
}

func TestSubmitRecordsAndPassesTurn(t *testing.T) {
	g := startedGame(t, Classic, "Anna", "Bert")

	evts, err := g.Submit("p1", 0, score.Poker, intp(77))
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, EventScoreRecorded, evts[0].Type())
	assert.Equal(t, EventTurnPassed, evts[1].Type())
	assert.Equal(t, "Bert's turn.", evts[1].Message())

	assert.Equal(t, "p2", g.CurrentPlayerID())
	assert.Equal(t, 77, g.Players()[0].Columns[0][score.Poker])
}

func TestSubmitAcceptsStrike(t *testing.T) {
	g := startedGame(t, Classic, "Anna", "Bert")
	_, err := g.Submit("p1", 0, score.Grande, intp(0))
	require.NoError(t, err)

	v, ok := g.Players()[0].Columns[0][score.Grande]
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	open, err := g.OpenCells("p1")
	require.NoError(t, err)
	assert.Equal(t, 9, open)
}

func TestTurnRoundRobin(t *testing.T) {
	for n := MinPlayers; n <= MaxPlayers; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("P%d", i+1)
		}
		g := startedGame(t, Triple, names...)
		for i, p := range g.Players() {
			assert.Equal(t, p.ID, g.CurrentPlayerID(), "seat %d", i)
			_, err := g.Submit(p.ID, i%3, score.Kings, intp(5))
			require.NoError(t, err)
		}
		assert.Equal(t, "p1", g.CurrentPlayerID())
	}
}

func TestWriteOnceCells(t *testing.T) {
	g := startedGame(t, Classic, "Anna", "Bert")
	_, err := g.Submit("p1", 0, score.Aces, intp(12))
	require.NoError(t, err)
	_, err = g.Submit("p2", 0, score.Aces, intp(6))
	require.NoError(t, err)

	before := g.Snapshot()
	_, err = g.Submit("p1", 0, score.Aces, intp(30))
	assert.ErrorIs(t, err, ErrCellAlreadySet)
	assert.True(t, IsSilent(err))
	assert.Equal(t, before, g.Snapshot())
	assert.Equal(t, 12, g.Players()[0].Columns[0][score.Aces])
}

func TestRejectedSubmissionsDoNotMutate(t *testing.T) {
	g := startedGame(t, Triple, "Anna", "Bert", "Cleo")
	_, err := g.Submit("p1", 0, score.Nines, intp(3))
	require.NoError(t, err)

	cases := []struct {
		name   string
		player string
		col    int
		cat    score.Category
		value  *int
		want   error
		silent bool
	}{
		{"not your turn", "p1", 1, score.Nines, intp(3), ErrNotYourTurn, true},
		{"null value", "p2", 0, score.Nines, nil, ErrMissingValue, true},
		{"column out of range", "p2", 3, score.Nines, intp(3), ErrInvalidCell, false},
		{"negative column", "p2", -1, score.Nines, intp(3), ErrInvalidCell, false},
		{"unknown category", "p2", 0, score.Category("X"), intp(3), ErrInvalidCell, false},
		{"negative value", "p2", 0, score.Nines, intp(-1), ErrNegativeValue, false},
		{"unknown player", "nobody", 0, score.Nines, intp(3), ErrNotYourTurn, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := g.Snapshot()
			evts, err := g.Submit(tc.player, tc.col, tc.cat, tc.value)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.silent, IsSilent(err))
			assert.Nil(t, evts)
			assert.Equal(t, before, g.Snapshot())
		})
	}
}

func TestSubmitBeforeStart(t *testing.T) {
	g := NewGame()
	_, err := g.Submit("p1", 0, score.Nines, intp(1))
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestTotals(t *testing.T) {
	g := startedGame(t, Triple, "Anna", "Bert")
	_, err := g.Submit("p1", 0, score.Kings, intp(5))
	require.NoError(t, err)

	total, err := g.Total("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	total, err = g.Total("p2")
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	_, err = g.Submit("p2", 2, score.Grande, intp(300))
	require.NoError(t, err)
	_, err = g.Submit("p1", 1, score.Poker, intp(154))
	require.NoError(t, err)

	total, err = g.Total("p1")
	require.NoError(t, err)
	assert.Equal(t, 159, total)

	colTotal, err := g.ColumnTotal("p1", 1)
	require.NoError(t, err)
	assert.Equal(t, 154, colTotal)

	_, err = g.ColumnTotal("p1", 3)
	assert.ErrorIs(t, err, ErrInvalidCell)
	_, err = g.Total("ghost")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestCompletionClassicTwoPlayers(t *testing.T) {
	g := startedGame(t, Classic, "Anna", "Bert")
	players := g.Players()

	for i, cat := range score.Categories {
		assert.False(t, g.IsComplete(), "before row %s", cat)
		_, err := g.Submit(players[0].ID, 0, cat, intp(0))
		require.NoError(t, err)
		if i == len(score.Categories)-1 {
			// Anna is finished but Bert still has a cell open.
			assert.False(t, g.IsComplete())
		}
		_, err = g.Submit(players[1].ID, 0, cat, intp(i))
		require.NoError(t, err)
	}

	assert.True(t, g.IsComplete())
	assert.Equal(t, Complete, g.Phase())
}

func TestCompletionTriple(t *testing.T) {
	g := startedGame(t, Triple, "Anna", "Bert", "Cleo")
	fill(t, g, func(seat, col int, cat score.Category) int { return seat })
	assert.True(t, g.IsComplete())

	r := g.Ranking()
	require.Len(t, r, 3)
	assert.Equal(t, "Cleo", r[0].Name)
	assert.Equal(t, 2*30, r[0].Total)
	assert.Equal(t, 1, r[0].Rank)
	assert.Equal(t, 0, r[2].Total)
}

func TestRankingIsStable(t *testing.T) {
	g := startedGame(t, Classic, "Anna", "Bert", "Cleo", "Dora")
	scores := []int{10, 20, 20, 10}
	for i, p := range g.Players() {
		_, err := g.Submit(p.ID, 0, score.Poker, intp(scores[i]))
		require.NoError(t, err)
	}

	r := g.Ranking()
	names := []string{r[0].Name, r[1].Name, r[2].Name, r[3].Name}
	assert.Equal(t, []string{"Bert", "Cleo", "Anna", "Dora"}, names)

	w, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, "Bert", w.Name)
}

func TestWinnerBeforeStart(t *testing.T) {
	_, ok := NewGame().Winner()
	assert.False(t, ok)
}

func TestResetDiscardsPlayers(t *testing.T) {
	g := startedGame(t, Classic, "Anna", "Bert")
	_, err := g.Submit("p1", 0, score.Nines, intp(2))
	require.NoError(t, err)

	evts := g.Reset()
	require.Len(t, evts, 1)
	assert.Equal(t, EventGameReset, evts[0].Type())
	assert.Equal(t, NotStarted, g.Phase())
	assert.Empty(t, g.Players())
	assert.Equal(t, "", g.CurrentPlayerID())
	assert.Equal(t, 0, g.Snapshot().CurrentTurn)
}

func TestResetRestoresClassicMode(t *testing.T) {
	g := startedGame(t, Triple, "Anna", "Bert")
	require.Equal(t, Triple, g.Mode())

	g.Reset()
	assert.Equal(t, Classic, g.Mode())
	assert.Equal(t, NewGameState().Mode, g.Snapshot().Mode)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"classic": Classic, "Triple": Triple, "3-fach": Triple, "klassisch": Classic} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("quad")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
