package ingest

import "github.com/sells-group/timber-cli/internal/model"

// RequireColumns resolves the named columns, failing with a
// MissingColumnError naming the first absent column.
func (t *Table) RequireColumns(names ...string) ([]int, error) {
	indexes := make([]int, len(names))
	for i, name := range names {
		idx, ok := t.Column(name)
		if !ok {
			return nil, &model.MissingColumnError{Source: t.Source, Column: name}
		}
		indexes[i] = idx
	}
	return indexes, nil
}
