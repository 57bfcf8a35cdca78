// Command gridpaths runs the shortest-path algorithms over YAML grid fixtures.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/gridpaths/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and cancel the running search
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := cli.Execute(ctx, version); err != nil {
		os.Exit(1)
	}
}
