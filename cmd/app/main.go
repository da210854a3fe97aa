package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sensorcoverage/cmd"
	"sensorcoverage/internal/adapters/in/cli"

	"github.com/labstack/gommon/log"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("sensorcoverage")
	log.SetHeader("${prefix}: ${level}")

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := cmd.NewCompositionRoot(config, cmd.NewLogger(config.LogLevel, os.Stderr))
	err = cli.Execute(ctx, app.CreateRootCommand(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		log.Fatalf("%v", err)
	}
}
