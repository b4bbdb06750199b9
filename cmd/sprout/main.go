package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/firebird-suite/sprout/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx, commands.DefaultEnv(), os.Args[1:])
	stop()
	os.Exit(code)
}
