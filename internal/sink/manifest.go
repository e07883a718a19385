package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var manifestHeader = []string{"run_id", "file", "ordinal", "base_seed", "stream"}

func writeManifest(w io.Writer, runID string, entries []ManifestEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(manifestHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			runID,
			e.File,
			strconv.Itoa(e.Ordinal),
			strconv.FormatUint(e.Base, 10),
			strconv.FormatUint(e.Stream, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("manifest row %d: %w", e.Ordinal, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadManifest parses a manifest written by Close. It returns the run id and
// the entries in file order.
func ReadManifest(r io.Reader) (string, []ManifestEntry, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return "", nil, err
	}
	if len(records) == 0 {
		return "", nil, fmt.Errorf("manifest is empty")
	}
	for i, h := range manifestHeader {
		if len(records[0]) != len(manifestHeader) || records[0][i] != h {
			return "", nil, fmt.Errorf("unexpected manifest header %v", records[0])
		}
	}

	var runID string
	entries := make([]ManifestEntry, 0, len(records)-1)
	for line, rec := range records[1:] {
		ordinal, err := strconv.Atoi(rec[2])
		if err != nil {
			return "", nil, fmt.Errorf("line %d: ordinal: %w", line+2, err)
		}
		base, err := strconv.ParseUint(rec[3], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("line %d: base_seed: %w", line+2, err)
		}
		stream, err := strconv.ParseUint(rec[4], 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("line %d: stream: %w", line+2, err)
		}
		runID = rec[0]
		entries = append(entries, ManifestEntry{File: rec[1], Ordinal: ordinal, Base: base, Stream: stream})
	}
	return runID, entries, nil
}
