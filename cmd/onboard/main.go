// Package main runs the onboarding wizard in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	onboardcmd "github.com/empowereconomy/empower/internal/cmd/onboard"
)

func main() {
	cfg, err := onboardcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ONBOARD] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := onboardcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("onboarding failed: %v", err)
	}
}
