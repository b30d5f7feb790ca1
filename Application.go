package main

import (
	"ThePong/core"
	"ThePong/logger"
	"ThePong/terminal"
	"ThePong/window"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const propertiesEnv = "game"

func main() {
	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	props, err := core.ReadProperties("./", propertiesEnv)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}
	logger.Log.Info(fmt.Sprintf(logger.StartupMsg, props.Display))

	game := core.NewGame(core.NewWorld())

	if err := run(game, props); err != nil {
		logger.Log.Fatal(err.Error())
	}

	score := game.World.Score
	logger.Log.Info(fmt.Sprintf(logger.ShutdownMsg, score.Player1, score.Player2))
}

func run(game *core.Game, props core.Properties) error {
	switch props.Display {
	case core.DisplayTerminal:
		return runTerminal(game, props)
	default:
		return window.Run(game, props)
	}
}

func runTerminal(game *core.Game, props core.Properties) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// tcell owns the tty now
	logger.Log.SetConsole(nil)

	t, err := terminal.Open(props.FrameRate)
	if err != nil {
		return err
	}
	defer t.Fini()

	err = t.Run(ctx, game)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
