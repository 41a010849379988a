package main

import (
	"context"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/randcred/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("randcred"))

	ctx, cancel := zapp.SignalContext(context.Background())

	code := cli.Execute(ctx, version, os.Args[1:], os.Stdout, os.Stderr)

	cancel()
	if err := app.Close(); err != nil && code == 0 {
		code = 1
	}
	os.Exit(code)
}
