package main

import (
	"testing"

	"github.com/modelsweep/modelsweep/internal/app"
	"github.com/modelsweep/modelsweep/internal/config"
)

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			EngineURL:  "http://127.0.0.1:8188",
			Locale:     "zh",
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"engine": "http://127.0.0.1:8188",
			"locale": "zh",
			"width":  "80",
			"height": "24",
			"footer": "true",
		},
		Args: []string{"-engine", "http://127.0.0.1:8188"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["engine"] != "http://127.0.0.1:8188" {
		t.Fatalf("expected engine flag, got %v", flagsValue["engine"])
	}
	if flagsValue["locale"] != "zh" {
		t.Fatalf("expected locale flag, got %v", flagsValue["locale"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag merged into payload, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file merged into payload, got %v", flagsValue["logFile"])
	}

	args, ok := payload["argv"].([]string)
	if !ok || len(args) != 2 {
		t.Fatalf("expected argv preserved, got %v", payload["argv"])
	}
	if _, ok := payload["tty"].(bool); !ok {
		t.Fatalf("expected tty probe in payload")
	}
}
