package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/timber-cli/internal/model"
)

// ReadCSV reads a CSV file into a Table. The first record is the header.
// A nonexistent file maps to model.ErrSourceFileMissing so the caller can
// distinguish "file absent" from a malformed file.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(model.ErrSourceFileMissing, "csv: %s", path)
		}
		return nil, eris.Wrapf(err, "csv: open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "csv: read %s", path)
	}
	if len(records) == 0 {
		return nil, eris.Errorf("csv: %s is empty", path)
	}

	return NewTable(filepath.Base(path), records[0], records[1:]), nil
}
