// Package config loads table setup files. A setup file declares the
// blinds, the starting button seat, and the players in seat order:
//
//	table "Friday Night" {
//	  small_blind = 50
//	  big_blind   = 100
//	  button      = 0
//
//	  player "Alice" { stack = 1000 }
//	  player "Bob"   { stack = 1000 }
//	}
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tablefelt/dealerpad/internal/game"
)

// SetupFile is the root of a table setup document.
type SetupFile struct {
	Table TableConfig `hcl:"table,block"`
}

// TableConfig defines one table.
type TableConfig struct {
	Name       string         `hcl:"name,label"`
	SmallBlind int            `hcl:"small_blind"`
	BigBlind   int            `hcl:"big_blind"`
	Button     int            `hcl:"button,optional"`
	Players    []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig defines one seat.
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Stack int    `hcl:"stack"`
}

// Load reads and validates a setup file from disk.
func Load(filename string) (game.SetupConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return game.SetupConfig{}, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var setup SetupFile
	if diags := gohcl.DecodeBody(file.Body, nil, &setup); diags.HasErrors() {
		return game.SetupConfig{}, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	return setup.Table.toSetup()
}

// LoadBytes parses a setup document from memory; filename is used only in
// diagnostics.
func LoadBytes(src []byte, filename string) (game.SetupConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return game.SetupConfig{}, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var setup SetupFile
	if diags := gohcl.DecodeBody(file.Body, nil, &setup); diags.HasErrors() {
		return game.SetupConfig{}, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	return setup.Table.toSetup()
}

func (t TableConfig) toSetup() (game.SetupConfig, error) {
	if err := t.validate(); err != nil {
		return game.SetupConfig{}, err
	}

	players := make([]game.SeatConfig, len(t.Players))
	for i, p := range t.Players {
		players[i] = game.SeatConfig{Name: p.Name, Stack: p.Stack}
	}

	return game.SetupConfig{
		TableName:   t.Name,
		SmallBlind:  t.SmallBlind,
		BigBlind:    t.BigBlind,
		ButtonIndex: t.Button,
		Players:     players,
	}, nil
}

func (t TableConfig) validate() error {
	if t.SmallBlind <= 0 {
		return fmt.Errorf("table %s: small blind must be positive", t.Name)
	}
	if t.BigBlind < t.SmallBlind {
		return fmt.Errorf("table %s: big blind must be at least the small blind", t.Name)
	}
	if len(t.Players) < 2 {
		return fmt.Errorf("table %s: at least two players required", t.Name)
	}
	if t.Button < 0 || t.Button >= len(t.Players) {
		return fmt.Errorf("table %s: button %d out of range for %d players", t.Name, t.Button, len(t.Players))
	}
	seen := make(map[string]bool, len(t.Players))
	for _, p := range t.Players {
		if p.Stack <= 0 {
			return fmt.Errorf("table %s: player %s: stack must be positive", t.Name, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("table %s: duplicate player name %s", t.Name, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
