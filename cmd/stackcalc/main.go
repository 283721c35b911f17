// Command stackcalc evaluates reverse-Polish integer expressions built on
// stateful stack computations.
//
// Usage:
//
//	stackcalc eval "3 4 + 2 *"
//	stackcalc eval "+" 1 2
//	stackcalc batch --file programs.yaml --workers 8
//
// Every flag can also be set through the environment with the STACKCALC_
// prefix, e.g. STACKCALC_LOG_LEVEL=debug.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand(viper.New()).ExecuteContext(ctx)

	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
