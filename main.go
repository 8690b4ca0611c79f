package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cubebench/app"
	"cubebench/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var manual bool
	flag.BoolVar(&manual, "manual", false, "Manual mode: buttons adjust the cube count, no sweep.")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	newApp := func(h hal.HAL) func(dtMs float64) error {
		return app.New(h, app.Config{Manual: manual})
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
