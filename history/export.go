package history

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"timestamp", "severity_class", "severity_label",
	"longitude", "latitude", "distance", "temperature",
	"humidity", "pressure", "hour", "duration",
}

// WriteCSV streams the session history in insertion order.
func (s *Store) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, rec := range s.Snapshot() {
		row := []string{
			rec.CreatedAt.Format(time.RFC3339),
			strconv.Itoa(int(rec.SeverityClass)),
			rec.SeverityLabel,
		}
		for _, v := range rec.Features.Values() {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
