package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/slither-sprint/internal/config"
	"github.com/tomz197/slither-sprint/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{
		SettingsPath: config.GetEnv("SLITHER_SETTINGS", "slither_settings.json"),
	}
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
