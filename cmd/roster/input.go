package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/exports"
)

// readRecords loads duty records from an xlsx workbook or a JSON array. The
// format is sniffed from the content, the file name is not consulted.
func readRecords(path string) ([]roster.RawAssignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if isZip(mtype) {
		return exports.ReadAssignmentsWorkbook(f)
	}

	var records []roster.RawAssignment
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s (%s): %w", path, mtype.String(), err)
	}
	return records, nil
}

// isZip reports whether m is a zip container; xlsx is detected as a child
// of application/zip.
func isZip(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}
