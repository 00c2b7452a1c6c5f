package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"horse.fit/landing/internal/cli"
)

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	rt, warnings, err := bootstrap(envLoader)
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warning)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
		return 1
	}

	rt.logger.Info().
		Str("color", rt.cfg.DisplayColor()).
		Strs("templates", rt.pages.Names()).
		Msg("startup check passed")
	fmt.Printf("ok: templates %s\n", strings.Join(rt.pages.Names(), ", "))
	return 0
}
