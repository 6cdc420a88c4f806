package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.EngineURL != "http://127.0.0.1:8188" {
		t.Fatalf("unexpected default engine URL %q", cfg.App.EngineURL)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer on by default")
	}
	if cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected verbose and trace off by default")
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected terminal-sized viewport by default")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	env := []string{
		"MODELSWEEP_ENGINE_URL=http://engine:9999",
		"MODELSWEEP_LOCALE=zh",
		"MODELSWEEP_FOOTER=false",
		"MODELSWEEP_TRACE=1",
		"MODELSWEEP_WIDTH=120",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.EngineURL != "http://engine:9999" {
		t.Fatalf("unexpected engine URL %q", cfg.App.EngineURL)
	}
	if cfg.App.Locale != "zh" || cfg.App.ShowFooter || !cfg.Logging.Trace || cfg.App.Width != 120 {
		t.Fatalf("environment not applied: %+v", cfg.App)
	}
}

func TestFlagsBeatEnvironment(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-engine", "http://flag:8188", "-footer=false"},
		[]string{"MODELSWEEP_ENGINE_URL=http://env:8188"},
	)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.EngineURL != "http://flag:8188" {
		t.Fatalf("expected flag to win, got %q", cfg.App.EngineURL)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled via flag")
	}
}

func TestTrailingSlashTrimmed(t *testing.T) {
	cfg, err := LoadArgs([]string{"-engine", "http://engine:8188/"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if strings.HasSuffix(cfg.App.EngineURL, "/") {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.App.EngineURL)
	}
}

func TestNegativeDimensionsRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected negative width rejected")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected negative height rejected")
	}
}

func TestMalformedEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"MODELSWEEP_WIDTH=abc", "MODELSWEEP_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.ShowFooter {
		t.Fatalf("expected malformed env values to fall back to defaults: %+v", cfg.App)
	}
}

func TestValidateEngineURL(t *testing.T) {
	cases := []struct {
		url string
		ok  bool
	}{
		{"http://127.0.0.1:8188", true},
		{"https://engine.example.com", true},
		{"ftp://engine", false},
		{"http://", false},
		{"not a url at all\x7f", false},
	}
	for _, c := range cases {
		cfg, err := LoadArgs([]string{"-engine", c.url}, nil)
		if err != nil {
			t.Fatalf("load %q: %v", c.url, err)
		}
		err = Validate(cfg)
		if c.ok && err != nil {
			t.Fatalf("expected %q valid, got %v", c.url, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("expected %q rejected", c.url)
		}
	}
}
