package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// TableColumns retrieves the column definitions for a given table.
// Names and types are lower-cased. On SQLite a missing table yields no columns.
func TableColumns(db *gorm.DB, table string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	if db.Dialector.Name() == "sqlite" {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DfltValue  *string
			Pk         int
		}
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", table)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		for _, col := range rows {
			columns = append(columns, ColumnInfo{
				Field:   strings.ToLower(col.Name),
				Type:    strings.ToLower(col.Type),
				Default: col.DfltValue,
			})
		}
		return columns, nil
	}

	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// MissingColumns returns the expected columns absent from table, in the order given.
func MissingColumns(db *gorm.DB, table string, expected []string) ([]string, error) {
	columns, err := TableColumns(db, table)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c.Field] = true
	}
	var missing []string
	for _, name := range expected {
		if !have[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
