package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/felixgeelhaar/todo/adapter/cli/shell"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	rootCmd := cli.NewRootCmd(shell.RunMenu,
		shell.NewShellCmd(),
		cli.NewVersionCmd(),
	)
	cli.Execute(ctx, rootCmd)
}
