package db

import (
	"context"
	"fmt"
	"strings"
)

// QueryResult is the tabular output of a raw query
type QueryResult struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Schema returns the CREATE statements of every table and index
func (s *Store) Schema(ctx context.Context) (string, error) {
	var statements []string
	err := s.db.WithContext(ctx).
		Raw("SELECT sql FROM sqlite_master WHERE sql IS NOT NULL AND name NOT LIKE 'sqlite_%' ORDER BY type DESC, name").
		Scan(&statements).Error
	if err != nil {
		return "", fmt.Errorf("failed to read schema: %w", err)
	}
	return strings.Join(statements, ";\n\n") + ";", nil
}

// RunQuery executes a single read-only statement and returns its rows as text.
// It runs with query_only set in a transaction that is always rolled back.
func (s *Store) RunQuery(ctx context.Context, query string) (QueryResult, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(query), ";")
	lower := strings.ToLower(trimmed)
	if !(strings.HasPrefix(lower, "select") || strings.HasPrefix(lower, "with")) || hasStatementBreak(trimmed) {
		return QueryResult{}, ReadOnlyQueryError{Query: query}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return QueryResult{}, fmt.Errorf("failed to start query: %w", tx.Error)
	}
	defer func() {
		tx.Exec("PRAGMA query_only = OFF")
		tx.Rollback()
	}()
	if err := tx.Exec("PRAGMA query_only = ON").Error; err != nil {
		return QueryResult{}, fmt.Errorf("failed to start query: %w", err)
	}

	rows, err := tx.Raw(trimmed).Rows()
	if err != nil {
		return QueryResult{}, queryError(query, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return QueryResult{}, fmt.Errorf("failed to read columns: %w", err)
	}

	result := QueryResult{Columns: columns, Rows: [][]string{}}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return QueryResult{}, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			switch val := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(val)
			default:
				row[i] = fmt.Sprint(val)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return QueryResult{}, queryError(query, err)
	}
	return result, nil
}

// queryError reports writes refused by query_only as ReadOnlyQueryError
func queryError(query string, err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "readonly") {
		return ReadOnlyQueryError{Query: query}
	}
	return fmt.Errorf("failed to run query: %w", err)
}

// hasStatementBreak reports a ';' outside quoted text
func hasStatementBreak(query string) bool {
	var quote rune
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == ';':
			return true
		}
	}
	return false
}
