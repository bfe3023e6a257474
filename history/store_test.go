package history

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/models"
)

func makeRecord(i int, severity models.Severity, at time.Time) models.PredictionRecord {
	return models.PredictionRecord{
		ID: fmt.Sprintf("rec-%d", i),
		Features: models.FeatureVector{
			Longitude: -73.98,
			Latitude:  40.75,
			Distance:  float64(i),
			Hour:      i % 24,
			Duration:  float64(10 * i),
		},
		SeverityClass: severity,
		SeverityLabel: severity.Label(),
		CreatedAt:     at,
	}
}

func TestStoreAppendOrder(t *testing.T) {
	s := NewStore(0)
	base := time.Now().UTC()

	for i := 0; i < 10; i++ {
		s.Append(makeRecord(i, models.SeverityMinor, base.Add(time.Duration(i)*time.Second)))
	}

	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}

	snapshot := s.Snapshot()
	for i, rec := range snapshot {
		if rec.ID != fmt.Sprintf("rec-%d", i) {
			t.Errorf("snapshot[%d].ID = %q, insertion order not preserved", i, rec.ID)
		}
	}
}

func TestStoreCapDropsOldest(t *testing.T) {
	s := NewStore(3)
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		s.Append(makeRecord(i, models.SeverityMinimal, base.Add(time.Duration(i)*time.Second)))
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	snapshot := s.Snapshot()
	if snapshot[0].ID != "rec-2" || snapshot[2].ID != "rec-4" {
		t.Errorf("cap should drop oldest records, got %q..%q", snapshot[0].ID, snapshot[2].ID)
	}
}

func TestStorePage(t *testing.T) {
	s := NewStore(0)
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		s.Append(makeRecord(i, models.SeverityMinor, base.Add(time.Duration(i)*time.Second)))
	}

	t.Run("newest first", func(t *testing.T) {
		page, hasMore := s.Page(2, nil)
		if len(page) != 2 {
			t.Fatalf("page length = %d, want 2", len(page))
		}
		if page[0].ID != "rec-4" || page[1].ID != "rec-3" {
			t.Errorf("page = %q, %q; want rec-4, rec-3", page[0].ID, page[1].ID)
		}
		if !hasMore {
			t.Error("hasMore = false, want true")
		}
	})

	t.Run("cursor continues", func(t *testing.T) {
		page, _ := s.Page(2, nil)
		cursor := page[len(page)-1].CreatedAt

		next, hasMore := s.Page(2, &cursor)
		if len(next) != 2 {
			t.Fatalf("page length = %d, want 2", len(next))
		}
		if next[0].ID != "rec-2" || next[1].ID != "rec-1" {
			t.Errorf("page = %q, %q; want rec-2, rec-1", next[0].ID, next[1].ID)
		}
		if !hasMore {
			t.Error("hasMore = false, want true")
		}
	})

	t.Run("last page", func(t *testing.T) {
		cursor := base.Add(1 * time.Second)
		page, hasMore := s.Page(2, &cursor)
		if len(page) != 1 {
			t.Fatalf("page length = %d, want 1", len(page))
		}
		if page[0].ID != "rec-0" {
			t.Errorf("page[0].ID = %q, want rec-0", page[0].ID)
		}
		if hasMore {
			t.Error("hasMore = true, want false")
		}
	})
}

func TestStoreStatsCounts(t *testing.T) {
	s := NewStore(0)
	base := time.Now().UTC()

	severities := []models.Severity{
		models.SeverityMinimal, models.SeverityMinimal,
		models.SeverityModerate,
		models.SeveritySevere, models.SeveritySevere, models.SeveritySevere,
	}
	for i, sev := range severities {
		s.Append(makeRecord(i, sev, base.Add(time.Duration(i)*time.Second)))
	}

	stats := s.Stats()
	if stats.Total != 6 {
		t.Errorf("Total = %d, want 6", stats.Total)
	}
	wantCounts := []int{2, 0, 1, 3}
	for i, want := range wantCounts {
		if stats.CountsByClass[i].Count != want {
			t.Errorf("CountsByClass[%d].Count = %d, want %d", i, stats.CountsByClass[i].Count, want)
		}
	}
}

func TestStoreStatsCorrelations(t *testing.T) {
	t.Run("omitted for small histories", func(t *testing.T) {
		s := NewStore(0)
		for i := 0; i < 4; i++ {
			s.Append(makeRecord(i, models.SeverityMinor, time.Now().UTC()))
		}
		if got := s.Stats().ParameterCorrelations; got != nil {
			t.Errorf("ParameterCorrelations = %v, want nil below %d records", got, minCorrelationSamples)
		}
	})

	t.Run("duration tracks severity", func(t *testing.T) {
		s := NewStore(0)
		base := time.Now().UTC()
		// severity grows with index and duration is 10*i, so the two
		// correlate perfectly
		severities := []models.Severity{0, 0, 1, 1, 2, 2, 3, 3}
		for i, sev := range severities {
			rec := makeRecord(i, sev, base.Add(time.Duration(i)*time.Second))
			rec.Features.Duration = float64(10 * int(sev))
			s.Append(rec)
		}

		stats := s.Stats()
		if len(stats.ParameterCorrelations) != models.NumFeatures {
			t.Fatalf("got %d correlations, want %d", len(stats.ParameterCorrelations), models.NumFeatures)
		}
		if stats.ParameterCorrelations[0].Parameter != "duration" {
			t.Errorf("strongest parameter = %q, want duration", stats.ParameterCorrelations[0].Parameter)
		}
		if c := stats.ParameterCorrelations[0].Correlation; c < 0.99 {
			t.Errorf("duration correlation = %v, want ~1", c)
		}
		// constant parameters must report zero, not NaN
		for _, pc := range stats.ParameterCorrelations {
			if pc.Parameter == "longitude" && pc.Correlation != 0 {
				t.Errorf("constant longitude correlation = %v, want 0", pc.Correlation)
			}
		}
	})
}

func TestStoreWriteCSV(t *testing.T) {
	s := NewStore(0)
	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	s.Append(makeRecord(1, models.SeverityModerate, base))
	s.Append(makeRecord(2, models.SeveritySevere, base.Add(time.Minute)))

	var buf bytes.Buffer
	if err := s.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d CSV lines, want 3 (header + 2 rows)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "timestamp,severity_class,severity_label") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Moderate") || !strings.Contains(lines[2], "Severe") {
		t.Errorf("rows missing severity labels: %q / %q", lines[1], lines[2])
	}
}

func TestManagerSessionIsolation(t *testing.T) {
	m := NewManager(50)

	a := m.Get("session-a")
	b := m.Get("session-b")
	if a == b {
		t.Fatal("distinct sessions share a store")
	}

	a.Append(makeRecord(1, models.SeverityMinor, time.Now().UTC()))
	if b.Len() != 0 {
		t.Errorf("session-b Len() = %d, want 0", b.Len())
	}

	if again := m.Get("session-a"); again != a {
		t.Error("Get() should return the same store for a session")
	}
	if m.Sessions() != 2 {
		t.Errorf("Sessions() = %d, want 2", m.Sessions())
	}
}
