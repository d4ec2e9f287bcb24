package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/handiism/iopaint-config/internal/config"
	"github.com/handiism/iopaint-config/internal/model"
)

func main() {
	printFlag := flag.Bool("print", false, "Print the effective settings as JSON")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Validate an IOPaint config file")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  iopaint-config-check [-print] <config.json>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("config_file", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("config file does not exist, defaults apply")
	}

	settings, err := config.Load(path)
	if err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	if !model.IsKnownModel(settings.Model) {
		logger.Warn("model is not in the built-in catalog", "model", settings.Model)
	}
	if settings.Input != nil {
		if _, err := os.Stat(*settings.Input); err != nil {
			logger.Warn("input path is not accessible", "input", *settings.Input, "error", err)
		}
	}

	if *printFlag {
		data, err := settings.Marshal()
		if err != nil {
			logger.Error("encode settings", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	}
}
