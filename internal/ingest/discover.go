// Package ingest 负责发现并读取两份导出工作簿：花名册与休假报表
package ingest

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/huamingce/huamingce/pkg/errors"
)

// 默认文件名匹配模式（与上游系统的导出命名一致）
const (
	DefaultRosterPattern = "Roster Data"
	DefaultLeavePattern  = "Leave"
)

// Files 一次导入所需的两个工作簿路径
type Files struct {
	Roster string
	Leave  string
}

// Discover 在目录中定位唯一的花名册与休假工作簿
// 两类文件各自必须恰好存在一个，缺失或多个均为致命错误
func Discover(dir, rosterPattern, leavePattern string) (Files, error) {
	if rosterPattern == "" {
		rosterPattern = DefaultRosterPattern
	}
	if leavePattern == "" {
		leavePattern = DefaultLeavePattern
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Files{}, apperrors.Wrap(err, apperrors.CodeFileUnreadable, "无法读取目录 "+dir)
	}

	var rosters, leaves []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isWorkbook(name) {
			continue
		}
		switch {
		case strings.Contains(name, rosterPattern):
			rosters = append(rosters, name)
		case strings.Contains(name, leavePattern):
			leaves = append(leaves, name)
		}
	}

	if len(rosters) > 1 {
		return Files{}, apperrors.DuplicateFile("花名册", rosters)
	}
	if len(leaves) > 1 {
		return Files{}, apperrors.DuplicateFile("休假报表", leaves)
	}
	if len(rosters) == 0 {
		return Files{}, apperrors.FileNotFound("花名册", dir)
	}
	if len(leaves) == 0 {
		return Files{}, apperrors.FileNotFound("休假报表", dir)
	}

	return Files{
		Roster: filepath.Join(dir, rosters[0]),
		Leave:  filepath.Join(dir, leaves[0]),
	}, nil
}

// isWorkbook 识别受支持的工作簿文件，跳过 Excel 的 ~$ 临时锁文件
func isWorkbook(name string) bool {
	if strings.HasPrefix(name, "~$") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}
