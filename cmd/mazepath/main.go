// Command mazepath solves, generates, renders and serves grid mazes.
//
// Usage:
//
//	mazepath solve                      # run the configured batch
//	mazepath solve -i mazes.txt -c conn8
//	mazepath generate --rows 8 --cols 12 --append path_finding_a.txt
//	mazepath render mazes.txt --strategy astar
//	mazepath serve --addr :8080
//	mazepath init-config mazepath.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
