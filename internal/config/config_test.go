package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Name != "huamingce" {
		t.Errorf("App.Name = %q, expected huamingce", cfg.App.Name)
	}
	if cfg.Import.RosterPattern != "Roster Data" {
		t.Errorf("RosterPattern = %q, expected Roster Data", cfg.Import.RosterPattern)
	}
	if cfg.Import.DailyHoursCap != 7.6 {
		t.Errorf("DailyHoursCap = %v, expected 7.6", cfg.Import.DailyHoursCap)
	}
	if len(cfg.Import.ExcludeKeywords) != 3 {
		t.Errorf("ExcludeKeywords = %v, expected 3 个默认关键词", cfg.Import.ExcludeKeywords)
	}
	if cfg.PayCycle.Days != 14 {
		t.Errorf("PayCycle.Days = %d, expected 14", cfg.PayCycle.Days)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IMPORT_INPUT_DIR", "/data/exports")
	t.Setenv("IMPORT_EXCLUDE_KEYWORDS", "DNR, VOID ,")
	t.Setenv("IMPORT_DAILY_HOURS_CAP", "8.0")
	t.Setenv("PAY_CYCLE_ANCHOR", "2024-06-03")
	t.Setenv("PAY_CYCLE_DAYS", "7")

	cfg := Load()

	if cfg.Import.InputDir != "/data/exports" {
		t.Errorf("InputDir = %q, expected /data/exports", cfg.Import.InputDir)
	}
	if len(cfg.Import.ExcludeKeywords) != 2 ||
		cfg.Import.ExcludeKeywords[0] != "DNR" || cfg.Import.ExcludeKeywords[1] != "VOID" {
		t.Errorf("ExcludeKeywords = %v, expected [DNR VOID]", cfg.Import.ExcludeKeywords)
	}
	if cfg.Import.DailyHoursCap != 8.0 {
		t.Errorf("DailyHoursCap = %v, expected 8.0", cfg.Import.DailyHoursCap)
	}
	if cfg.PayCycle.Anchor != "2024-06-03" || cfg.PayCycle.Days != 7 {
		t.Errorf("PayCycle = %+v, expected anchor 2024-06-03 days 7", cfg.PayCycle)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
import:
  input_dir: /srv/imports
  daily_hours_cap: 7.2
  exclude_keywords:
    - DNR
pay_cycle:
  anchor: "2024-03-04"
  days: 7
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Import.InputDir != "/srv/imports" {
		t.Errorf("InputDir = %q, expected /srv/imports", cfg.Import.InputDir)
	}
	if cfg.Import.DailyHoursCap != 7.2 {
		t.Errorf("DailyHoursCap = %v, expected 7.2", cfg.Import.DailyHoursCap)
	}
	if cfg.PayCycle.Anchor != "2024-03-04" {
		t.Errorf("PayCycle.Anchor = %q, expected 2024-03-04", cfg.PayCycle.Anchor)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
	// 文件未覆盖的字段保留环境默认值
	if cfg.App.Name != "huamingce" {
		t.Errorf("App.Name = %q, expected huamingce", cfg.App.Name)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("缺失的配置文件应报错")
	}
}

func TestImporterOptions(t *testing.T) {
	cfg := Load()
	cfg.PayCycle.Anchor = "2024-06-03"
	cfg.PayCycle.Days = 7
	cfg.Import.Timezone = "Australia/Sydney"

	opts, err := cfg.ImporterOptions()
	if err != nil {
		t.Fatalf("ImporterOptions() error = %v", err)
	}

	if opts.Location == nil || opts.Location.String() != "Australia/Sydney" {
		t.Errorf("Location = %v, expected Australia/Sydney", opts.Location)
	}
	if opts.PayCycle.Days != 7 {
		t.Errorf("PayCycle.Days = %d, expected 7", opts.PayCycle.Days)
	}
	if got := opts.PayCycle.Anchor.Format("2006-01-02"); got != "2024-06-03" {
		t.Errorf("PayCycle.Anchor = %s, expected 2024-06-03", got)
	}
}

func TestImporterOptions_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"时区无效", func(c *Config) { c.Import.Timezone = "Mars/Olympus" }},
		{"锚定日格式错误", func(c *Config) { c.PayCycle.Anchor = "03/04/2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			if _, err := cfg.ImporterOptions(); err == nil {
				t.Error("应返回错误")
			}
		})
	}
}
