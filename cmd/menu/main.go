// Package main starts the interactive text menu.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	menucmd "github.com/uniplan/uniplan/internal/cmd/menu"
	"github.com/uniplan/uniplan/internal/platform/config"
)

func main() {
	cfg, err := menucmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := menucmd.Run(ctx, cfg); err != nil && ctx.Err() == nil {
		config.Exitf("run menu: %v", err)
	}
}
