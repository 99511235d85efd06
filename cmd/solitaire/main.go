package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/broy/marblesolitaire/config"
	"github.com/broy/marblesolitaire/shell"
)

const banner = `Marble Solitaire

The goal of this game is to leave only one marble on the board. Jump a
marble over an adjacent marble into an empty spot, up, down, left, or
right, but not diagonally. Enter moves as "row col direction", e.g.
"3 0 right". Type "help" for the full command list.
`

func main() {
	cfg := &config.Config{}
	args := os.Args[1:]
	if err := cfg.Load(args); err != nil {
		fmt.Fprintln(os.Stderr, "could not parse flags:", err)
		os.Exit(1)
	}
	cfg.Apply()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).Level(cfg.ZerologLevel()).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(cfg.ZerologLevel())
	log.Logger = logger

	log.Debug().Interface("config", cfg).Msg("loaded config")

	fmt.Print(banner)

	sc := shell.NewController()
	sc.SetVisitedFilterConfig(cfg.FilterConfig())
	sc.UseCustomOpening(cfg.EmptyRow, cfg.EmptyCol)

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	argsLine := strings.TrimSpace(strings.Join(args, " "))
	if argsLine == "" {
		go sc.Loop(sig)
	} else {
		sc.Execute(argsLine)
		sig <- syscall.SIGINT
	}

	<-idleConnsClosed

	sc.Cleanup()
	log.Info().Msg("solitaire shutting down")
}
