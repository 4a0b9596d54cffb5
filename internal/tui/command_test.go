package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()
	cases := []struct {
		input string
		want  Command
	}{
		{"check", Command{Kind: CmdCheck}},
		{"  CALL  ", Command{Kind: CmdCall}},
		{"f", Command{Kind: CmdFold}},
		{"bet 200", Command{Kind: CmdBet, Amount: 200}},
		{"r 550", Command{Kind: CmdRaise, Amount: 550}},
		{"undo", Command{Kind: CmdUndo}},
		{"next", Command{Kind: CmdNext}},
		{"next turn", Command{Kind: CmdNext, Text: "TURN"}},
		{"pot 900", Command{Kind: CmdPot, Amount: 900}},
		{"name Friday Night", Command{Kind: CmdName, Text: "Friday Night"}},
		{"winner Alice", Command{Kind: CmdWinner, Text: "Alice"}},
		{"judge Ah Kh Qh Jh 10h / As Ks", Command{Kind: CmdJudge, Text: "Ah Kh Qh Jh 10h / As Ks"}},
		{"save", Command{Kind: CmdSave}},
		{"quit", Command{Kind: CmdQuit}},
		{"?", Command{Kind: CmdHelp}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			cmd, err := parseCommand(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	t.Parallel()
	for _, input := range []string{
		"",
		"   ",
		"shove",
		"bet",
		"bet lots",
		"raise 10 20",
		"check now",
		"winner",
		"winner Alice Bob",
		"name",
		"next flop river",
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := parseCommand(input)
			assert.Error(t, err)
		})
	}
}
