package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/session"
)

func TestRunPlain(t *testing.T) {
	app, err := session.NewSession(nil, engine.Classic)
	require.NoError(t, err)

	input := strings.Join([]string{
		"start with: Anna and: Bert",
		"combo row: P main: A pair: D",
		"strike by: Anna row: 9",
		"count row: K dice: 9",
		"",
		"bogus",
		"exit",
		"rank",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, RunPlain(app, strings.NewReader(input), &out, nil))

	text := out.String()
	assert.Contains(t, text, "Game started (classic) with [Anna Bert].")
	assert.Contains(t, text, "Anna scores 77 on Poker (column 1).")
	assert.Contains(t, text, "Bert's turn.")
	assert.Contains(t, text, "Sheet")
	assert.Contains(t, text, "Error:")
	assert.Contains(t, text, "wasn't able")
	assert.NotContains(t, text, "1. Anna")
}

func TestSheetProgress(t *testing.T) {
	app, err := session.NewSession(nil, engine.Triple)
	require.NoError(t, err)

	total, filled := sheetProgress(app.Game())
	assert.Zero(t, total)
	assert.Zero(t, filled)

	_, err = app.Seat([]string{"Anna", "Bert"}, "")
	require.NoError(t, err)
	_, err = app.Execute("strike row: G")
	require.NoError(t, err)

	total, filled = sheetProgress(app.Game())
	assert.Equal(t, 60, total)
	assert.Equal(t, 1, filled)
}
