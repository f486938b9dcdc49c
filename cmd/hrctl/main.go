package main

import (
	"context"
	"fmt"
	"os"

	"go-hrpms/internal/cli"
	"go-hrpms/internal/config"
	"go-hrpms/internal/shared/apperror"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("config: %v", err))
		os.Exit(1)
	}

	apperror.Init()

	root := cli.RootCmd(cli.PostgresOpener(cfg), cfg)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
