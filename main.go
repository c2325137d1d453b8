package main

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/pieces/config"
	"github.com/ratel-online/pieces/deck"
	"github.com/ratel-online/pieces/dice"
	"github.com/ratel-online/pieces/player"
	"github.com/ratel-online/pieces/table"
	"github.com/ratel-online/pieces/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil {
		log.Error(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	ui.Message.Listen()

	d := deck.New(cfg.Decks, nil)
	if cfg.Seed != 0 {
		d.WithRand(rand.New(rand.NewSource(cfg.Seed)))
	}
	d.Shuffle()

	tbl := table.New()
	defer tbl.Close()
	for i, name := range cfg.Players {
		if err := tbl.Seat(player.New(name, i > 0, nil)); err != nil {
			return err
		}
	}
	if err := tbl.Deal(d, cfg.HandSize); err != nil {
		return err
	}

	for _, p := range tbl.Players() {
		ui.Message.Hand(p)
		results, err := p.RollDice(cfg.DiceSides...)
		if err != nil {
			return err
		}
		ui.Message.DiceRolled(p.Name(), results, dice.Sum(results))
	}

	// the first seated player returns a random card to the bottom of the deck
	if players := tbl.Players(); len(players) > 0 && !players[0].Hand().Empty() {
		if _, err := players[0].DropCard(nil, d); err != nil {
			return err
		}
	}
	ui.Message.DeckSummary(d)
	log.Infof("table %d done, %d card(s) left\n", tbl.ID, d.Size())
	return nil
}
