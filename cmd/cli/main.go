package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/minaorangina/eights/cli"
	"github.com/minaorangina/eights/config"
	"github.com/minaorangina/eights/deck"
	"github.com/minaorangina/eights/engine"
	"github.com/minaorangina/eights/players"
	"github.com/minaorangina/eights/protocol"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	// the board owns the terminal
	log := cfg.NewLogger()
	if log.GetLevel() > logrus.WarnLevel {
		log.SetLevel(logrus.WarnLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pterm.DefaultHeader.Println("Crazy Eights")

	name, err := pterm.DefaultInteractiveTextInput.WithDefaultText("What's your name?").Show()
	if err != nil {
		log.Fatal(err)
	}
	if name == "" {
		name = "You"
	}

	human := cli.NewPlayer(players.NewID(), name, os.Stdout, cli.TerminalPrompter{})

	ge, err := engine.NewGameEngine(ctx, engine.GameEngineOpts{
		GameID:    "local",
		CreatorID: human.ID(),
		Players:   players.NewPlayers(human),
		BotDelay:  cfg.BotDelay,
		Rand:      deck.NewRand(cfg.Seed),
		Log:       log,
	})
	if err != nil {
		log.Fatal(err)
	}

	ge.Receive(protocol.InboundMessage{PlayerID: human.ID(), Command: protocol.Start})

	err = human.Play(ctx, ge)
	switch {
	case err == nil:
	case errors.Is(err, cli.ErrQuit), errors.Is(err, context.Canceled):
		pterm.Info.Println("Bye!")
	default:
		log.Fatal(err)
	}
}
