package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "OPENAI_API_KEY", "OPENAI_MODEL", "TELEGRAM_BOT_TOKEN",
		"DOCTOR_CHAT_ID", "ENGINE_MODE", "ENGINE_CONFIG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Engine.Mode != "basic" {
		t.Errorf("Expected default mode basic, got %s", cfg.Engine.Mode)
	}
	if cfg.Engine.DiagnosisThreshold != 2 {
		t.Errorf("Expected default threshold 2, got %d", cfg.Engine.DiagnosisThreshold)
	}
	if cfg.Engine.DelayMinMS != 1500 || cfg.Engine.DelayMaxMS != 4500 {
		t.Errorf("Unexpected default delay range %d..%d", cfg.Engine.DelayMinMS, cfg.Engine.DelayMaxMS)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENGINE_MODE", "clinical")
	t.Setenv("DOCTOR_CHAT_ID", "123456789")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.Engine.Mode != "clinical" {
		t.Errorf("Expected clinical mode, got %s", cfg.Engine.Mode)
	}
	if cfg.DoctorChatID != 123456789 {
		t.Errorf("Expected chat id 123456789, got %d", cfg.DoctorChatID)
	}
}

func TestLoad_EngineFileOverlay(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "engine.yaml")
	data := []byte("mode: clinical\ndiagnosis_threshold: 3\ndelay_min_ms: 0\ndelay_max_ms: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENGINE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Engine.Mode != "clinical" || cfg.Engine.DiagnosisThreshold != 3 {
		t.Errorf("File overlay not applied: %+v", cfg.Engine)
	}
	if cfg.Engine.DelayMinMS != 0 || cfg.Engine.DelayMaxMS != 10 {
		t.Errorf("Delay overlay not applied: %+v", cfg.Engine)
	}
}

func TestLoad_PartialEngineFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("mode: clinical\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENGINE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Engine.DiagnosisThreshold != 2 {
		t.Errorf("Absent keys must keep defaults, got threshold %d", cfg.Engine.DiagnosisThreshold)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad mode":    {"ENGINE_MODE": "aggressive"},
		"bad chat id": {"DOCTOR_CHAT_ID": "abc"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestLoad_BadDelayRange(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("delay_min_ms: 500\ndelay_max_ms: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENGINE_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Error("Expected a validation error for an inverted delay range")
	}
}
