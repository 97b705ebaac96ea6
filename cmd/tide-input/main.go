// cmd/tide-input/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"
	"strings"

	"github.com/bethropolis/tide-input/internal/app"
	"github.com/bethropolis/tide-input/internal/backend/tcellbackend"
	"github.com/bethropolis/tide-input/internal/config"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/theme"
)

const usage = `Usage: tide-input [flags] [messages]

Prompts for a name and greets it. With "messages", records lines typed
into the field until q is pressed.

Flags:
`

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	args, err := flags.ParseFlags(fs, os.Args[1:])
	if err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration ---
	cfg, cfgErr := config.Load(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	logOut, closeLog, err := logger.Open(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
	}
	defer closeLog()
	logger.SetDebugFilter(*flags.DebugLog)
	logger.Init(cfg.Logger, logOut)

	logger.Infof("Starting %s %s", config.AppName, config.Version)

	// Warnings are logged and also shown in the tcell status bar.
	var notices []string
	warn := func(format string, args ...interface{}) {
		logger.Warnf(format, args...)
		notices = append(notices, fmt.Sprintf(format, args...))
	}
	if cfgErr != nil {
		warn("Config: %v (using defaults)", cfgErr)
	}
	if len(cfg.Undecoded) > 0 {
		warn("Config: unrecognized keys: %v", cfg.Undecoded)
	}

	th, err := cfg.Theme()
	if err != nil {
		warn("Theme: %v", err)
	}

	if len(args) > 0 && args[0] == "messages" {
		if err := runMessages(cfg, th); err != nil {
			logger.Errorf("Messages exited with error: %v", err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	res, err := runPrompt(cfg, th, notices)
	if err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if res.Accepted {
		fmt.Printf("Hello %s!\n", res.Value)
	} else {
		fmt.Println("Goodbye!")
	}
	logger.Infof("%s finished, accepted=%v", config.AppName, res.Accepted)
}

func runPrompt(cfg *config.Config, th *theme.Theme, notices []string) (app.Result, error) {
	opts := app.Options{
		Label:   cfg.Field.Label,
		Width:   cfg.Field.Width,
		Initial: cfg.Field.Initial,
		Theme:   th,
	}

	if cfg.Field.Backend == config.BackendTea {
		return app.RunPrompt(opts)
	}

	keys := tcellbackend.NewKeymap()
	if err := keys.Apply(cfg.Keys); err != nil {
		logger.Warnf("Keys: %v", err)
		notices = append(notices, fmt.Sprintf("Keys: %v", err))
	}
	opts.Keys = keys
	opts.Notice = strings.Join(notices, "; ")

	a, err := app.NewApp(opts)
	if err != nil {
		return app.Result{}, err
	}
	return a.Run()
}

func runMessages(cfg *config.Config, th *theme.Theme) error {
	if cfg.Field.Backend != config.BackendTea {
		logger.Infof("messages always uses the %s backend", config.BackendTea)
	}
	msgs, err := app.RunMessages(th)
	if err != nil {
		return err
	}
	for i, m := range msgs {
		fmt.Printf("%d: %s\n", i, m)
	}
	return nil
}
