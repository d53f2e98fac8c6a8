package main

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/a3tai/filing-renamer/internal/config"
)

func TestSetupLogging(t *testing.T) {
	origWriter := log.Writer()
	origFlags := log.Flags()
	defer func() {
		log.SetOutput(origWriter)
		log.SetFlags(origFlags)
	}()

	cfg := config.DefaultConfig()
	cfg.Mode = config.ModeMCP

	setupLogging(cfg)
	if log.Writer() != io.Discard {
		t.Error("non-debug MCP mode should discard log output")
	}

	cfg.LogLevel = "debug"
	setupLogging(cfg)
	if log.Writer() != os.Stderr {
		t.Error("debug MCP mode should log to stderr")
	}
}
