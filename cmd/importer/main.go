// HuaMingCe 花名册导入工具
// 主程序入口

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/huamingce/huamingce/internal/config"
	"github.com/huamingce/huamingce/internal/ingest"
	"github.com/huamingce/huamingce/internal/metrics"
	apperrors "github.com/huamingce/huamingce/pkg/errors"
	"github.com/huamingce/huamingce/pkg/importer"
	"github.com/huamingce/huamingce/pkg/logger"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	input       string
	configPath  string
	out         string
	showMetrics bool
	logLevel    string
	logFormat   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(apperrors.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "huamingce",
		Short:         "花名册与休假报表导入工具",
		Long:          "扫描目录中的花名册与休假报表导出文件，对账合并为规范化的员工数据集。",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "导出文件所在目录（默认当前目录）")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML 配置文件路径")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "数据集 JSON 快照输出路径（不填则不输出）")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "运行结束时输出指标快照")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "日志级别（debug/info/warn/error）")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "日志格式（console/json）")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("HuaMingCe 花名册导入工具 v%s\n", Version)
			fmt.Printf("Build: %s (%s)\n", BuildTime, GitCommit)
		},
	}
}

func runImport(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger.Init(cfg.Log)

	impOpts, err := cfg.ImporterOptions()
	if err != nil {
		logger.WithError(err).Msg("配置无效")
		return err
	}

	start := time.Now()

	files, err := ingest.Discover(cfg.Import.InputDir, cfg.Import.RosterPattern, cfg.Import.LeavePattern)
	if err != nil {
		logger.WithError(err).Msg("文件发现失败")
		return err
	}
	logger.Info().
		Str("roster", files.Roster).
		Str("leave", files.Leave).
		Msg("已定位导出文件")

	rosterTable, err := ingest.ReadRoster(files.Roster)
	if err != nil {
		logger.WithError(err).Str("file", files.Roster).Msg("花名册读取失败")
		return err
	}
	leaveTable, err := ingest.ReadLeave(files.Leave)
	if err != nil {
		logger.WithError(err).Str("file", files.Leave).Msg("休假报表读取失败")
		return err
	}

	imp := importer.New(impOpts)
	il := logger.NewImportLogger(imp.Report().RunID)
	il.StartImport(len(rosterTable.Rows), len(leaveTable.Rows))

	err = imp.ImportRoster(rosterTable.Rows)
	if err == nil {
		imp.ImportLeave(leaveTable.Rows)
		imp.Finalize()
	}

	duration := time.Since(start)
	recordMetrics(imp.Report(), err == nil, duration)

	if err != nil {
		logger.WithError(err).Msg("导入终止")
		return err
	}

	ds, rep := imp.DataSet(), imp.Report()
	il.ImportComplete(ds.Len(), rep.Stats.UnassignedShifts, duration)

	if opts.out != "" {
		if err := writeSnapshot(opts.out, ds); err != nil {
			logger.WithError(err).Str("path", opts.out).Msg("快照写出失败")
			return err
		}
		logger.Info().Str("path", opts.out).Msg("数据集快照已写出")
	}

	if opts.showMetrics {
		fmt.Print(metrics.Snapshot())
	}
	return nil
}

// loadConfig 加载配置：环境变量打底，配置文件与命令行依次覆盖
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Load()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(opts.configPath); err != nil {
			return nil, err
		}
	}
	if opts.input != "" {
		cfg.Import.InputDir = opts.input
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	return cfg, nil
}

func recordMetrics(rep *importer.Report, success bool, duration time.Duration) {
	metrics.RecordImportRun(success, duration)
	if rep == nil {
		return
	}
	metrics.RecordRows("roster", "processed", rep.Stats.RosterRows)
	metrics.RecordRows("roster", "excluded", rep.Stats.ExcludedRows)
	metrics.RecordRows("roster", "unassigned", rep.Stats.UnassignedShifts)
	metrics.RecordRows("leave", "processed", rep.Stats.LeaveRows)
	metrics.RecordRows("leave", "skipped", rep.Stats.LeaveRowsSkipped)
}

func writeSnapshot(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
