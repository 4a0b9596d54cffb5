package main

import (
	"fmt"

	"github.com/tablefelt/dealerpad/internal/judge"
)

// JudgeCmd names the best hand from the command line, for settling "what
// beats what" arguments without opening the dealer screen.
type JudgeCmd struct {
	Board string `kong:"arg,help='Board cards in one argument: Ah Kh Qh Jh 10h'"`
	Hole  string `kong:"arg,help='Hole cards in one argument: As Ks'"`
}

func (c *JudgeCmd) Run() error {
	result := judge.Judge(c.Board, c.Hole)

	switch result.Status {
	case judge.StatusOK:
		fmt.Printf("%s\n%s\n", result.Category, result.Detail)
		return nil

	case judge.StatusInsufficient:
		return fmt.Errorf("%s", result.Guide)

	default:
		for _, e := range result.Errors {
			fmt.Println(e)
		}
		return fmt.Errorf("%s", result.Guide)
	}
}
