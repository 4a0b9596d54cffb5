package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies a dealer command.
type CommandKind int

const (
	CmdCheck CommandKind = iota
	CmdCall
	CmdFold
	CmdBet
	CmdRaise
	CmdUndo
	CmdNext
	CmdPot
	CmdName
	CmdWinner
	CmdJudge
	CmdSave
	CmdHelp
	CmdQuit
)

// Command is one parsed line of dealer input.
type Command struct {
	Kind   CommandKind
	Amount int    // bet, raise, pot
	Text   string // name, winner, next round, judge input
}

// parseCommand turns a line of input into a Command. Keywords are
// case-insensitive; amounts are plain integers in chips.
func parseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	keyword := strings.ToLower(fields[0])
	args := fields[1:]

	switch keyword {
	case "check", "k":
		return noArgs(CmdCheck, keyword, args)
	case "call", "c":
		return noArgs(CmdCall, keyword, args)
	case "fold", "f":
		return noArgs(CmdFold, keyword, args)
	case "undo", "u":
		return noArgs(CmdUndo, keyword, args)
	case "save":
		return noArgs(CmdSave, keyword, args)
	case "help", "?":
		return noArgs(CmdHelp, keyword, args)
	case "quit", "exit", "q":
		return noArgs(CmdQuit, keyword, args)

	case "bet", "b":
		return oneAmount(CmdBet, keyword, args)
	case "raise", "r":
		return oneAmount(CmdRaise, keyword, args)
	case "pot":
		return oneAmount(CmdPot, keyword, args)

	case "next", "n":
		// Optional explicit round, e.g. "next turn" to correct a misdeal.
		if len(args) > 1 {
			return Command{}, fmt.Errorf("usage: next [round]")
		}
		cmd := Command{Kind: CmdNext}
		if len(args) == 1 {
			cmd.Text = strings.ToUpper(args[0])
		}
		return cmd, nil

	case "name":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("usage: name <table name>")
		}
		return Command{Kind: CmdName, Text: strings.Join(args, " ")}, nil

	case "winner", "w":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: winner <player>")
		}
		return Command{Kind: CmdWinner, Text: args[0]}, nil

	case "judge", "j":
		// Board and hole cards separated by "/": judge Ah Kh Qh Jh 10h / As Ks
		return Command{Kind: CmdJudge, Text: strings.Join(args, " ")}, nil

	default:
		return Command{}, fmt.Errorf("unknown command %q, try 'help'", keyword)
	}
}

func noArgs(kind CommandKind, keyword string, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, fmt.Errorf("%s takes no arguments", keyword)
	}
	return Command{Kind: kind}, nil
}

func oneAmount(kind CommandKind, keyword string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, fmt.Errorf("usage: %s <amount>", keyword)
	}
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, fmt.Errorf("%s: %q is not a number", keyword, args[0])
	}
	return Command{Kind: kind, Amount: amount}, nil
}

const helpText = `check | call | fold          act for the player whose turn it is
bet <n> | raise <n>          open a bet / raise to a total of <n>
winner <player>              award the pot at showdown
undo                         take back the last action
next [round]                 advance (or correct) the betting round
pot <n> | name <text>        dealer corrections
judge <board> / <hole>       name the best hand, e.g. judge Ah Kh Qh Jh 10h / As Ks
save | quit                  snapshot to disk / leave`
