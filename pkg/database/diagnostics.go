package database

import (
	"fmt"

	"gorm.io/gorm"
)

type TableReport struct {
	Table  string `json:"table" yaml:"table"`
	Exists bool   `json:"exists" yaml:"exists"`
	Rows   int64  `json:"rows" yaml:"rows"`
}

// Diagnose 检查每张表是否存在并统计行数。
// 表缺失不算错误，体现在报告里；查询失败才返回 error。
func Diagnose(db *gorm.DB) ([]TableReport, error) {
	reports := make([]TableReport, 0, len(Models()))
	for _, m := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, err
		}
		report := TableReport{Table: stmt.Schema.Table}

		if !db.Migrator().HasTable(m) {
			reports = append(reports, report)
			continue
		}
		report.Exists = true

		if err := db.Model(m).Count(&report.Rows).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", report.Table, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// MissingTables 返回报告中不存在的表名
func MissingTables(reports []TableReport) []string {
	var missing []string
	for _, r := range reports {
		if !r.Exists {
			missing = append(missing, r.Table)
		}
	}
	return missing
}
