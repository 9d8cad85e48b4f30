// Package config 提供配置管理
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/huamingce/huamingce/pkg/errors"
	"github.com/huamingce/huamingce/pkg/importer"
	"github.com/huamingce/huamingce/pkg/logger"
	"github.com/huamingce/huamingce/pkg/paycycle"
)

// Config 应用配置
type Config struct {
	App      AppConfig      `yaml:"app"`
	Import   ImportConfig   `yaml:"import"`
	PayCycle PayCycleConfig `yaml:"pay_cycle"`
	Log      logger.Config  `yaml:"log"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name string `yaml:"name"`
	Env  string `yaml:"env"`
}

// ImportConfig 导入配置
type ImportConfig struct {
	InputDir        string   `yaml:"input_dir"`
	RosterPattern   string   `yaml:"roster_pattern"`
	LeavePattern    string   `yaml:"leave_pattern"`
	ExcludeKeywords []string `yaml:"exclude_keywords"`
	DailyHoursCap   float64  `yaml:"daily_hours_cap"`
	Timezone        string   `yaml:"timezone"`
}

// PayCycleConfig 薪资周期配置
type PayCycleConfig struct {
	Anchor string `yaml:"anchor"` // YYYY-MM-DD
	Days   int    `yaml:"days"`
}

// Load 从环境变量加载配置
func Load() *Config {
	return &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "huamingce"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Import: ImportConfig{
			InputDir:        getEnv("IMPORT_INPUT_DIR", "."),
			RosterPattern:   getEnv("IMPORT_ROSTER_PATTERN", "Roster Data"),
			LeavePattern:    getEnv("IMPORT_LEAVE_PATTERN", "Leave"),
			ExcludeKeywords: getEnvList("IMPORT_EXCLUDE_KEYWORDS", importer.DefaultExcludeKeywords),
			DailyHoursCap:   getEnvFloat("IMPORT_DAILY_HOURS_CAP", importer.DefaultDailyHoursCap),
			Timezone:        getEnv("IMPORT_TIMEZONE", "Local"),
		},
		PayCycle: PayCycleConfig{
			Anchor: getEnv("PAY_CYCLE_ANCHOR", "2024-01-01"),
			Days:   getEnvInt("PAY_CYCLE_DAYS", paycycle.DefaultDays),
		},
		Log: logger.Config{
			Level:      getEnv("APP_LOG_LEVEL", "info"),
			Format:     getEnv("APP_LOG_FORMAT", "console"),
			Output:     getEnv("APP_LOG_OUTPUT", "stderr"),
			TimeFormat: time.RFC3339,
		},
	}
}

// LoadFile 在环境变量配置之上叠加 YAML 配置文件
func LoadFile(path string) (*Config, error) {
	cfg := Load()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeFileUnreadable, "无法读取配置文件 "+path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidInput, "配置文件格式无效 "+path)
	}
	return cfg, nil
}

// ImporterOptions 将配置转换为对账选项
func (c *Config) ImporterOptions() (importer.Options, error) {
	loc := time.Local
	if tz := c.Import.Timezone; tz != "" && tz != "Local" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return importer.Options{}, apperrors.Wrap(err, apperrors.CodeInvalidInput, "时区无效 "+tz)
		}
	}

	cal := paycycle.Default()
	if c.PayCycle.Anchor != "" {
		anchor, err := time.ParseInLocation("2006-01-02", c.PayCycle.Anchor, loc)
		if err != nil {
			return importer.Options{}, apperrors.Wrap(err, apperrors.CodeInvalidInput,
				"薪资周期锚定日无效 "+c.PayCycle.Anchor)
		}
		cal.Anchor = anchor
	}
	if c.PayCycle.Days > 0 {
		cal.Days = c.PayCycle.Days
	}

	return importer.Options{
		ExcludeKeywords: c.Import.ExcludeKeywords,
		DailyHoursCap:   c.Import.DailyHoursCap,
		PayCycle:        cal,
		Location:        loc,
	}, nil
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// 辅助函数
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
