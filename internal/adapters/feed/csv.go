package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"planboard/internal/domain"
	"planboard/internal/ports"
)

// Default column headers of the attendance extract. Only these three
// columns are read; everything else in the export is ignored.
const (
	ColumnFirstName = "First Name"
	ColumnLastName  = "Last Name"
	ColumnJobSite   = "Job Description"
)

// CSVSource implements ports.FeedSource on an attendance CSV export.
// Columns are located by header, so their order in the file does not
// matter. Row order is preserved.
type CSVSource struct {
	path string

	firstCol string
	lastCol  string
	jobCol   string
}

// Ensure CSVSource implements FeedSource
var _ ports.FeedSource = (*CSVSource)(nil)

// NewCSVSource creates a feed source for the given CSV file
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{
		path:     path,
		firstCol: ColumnFirstName,
		lastCol:  ColumnLastName,
		jobCol:   ColumnJobSite,
	}
}

// WithColumns overrides the expected header names, for exports whose
// columns were renamed.
func (c *CSVSource) WithColumns(first, last, job string) *CSVSource {
	if first != "" {
		c.firstCol = first
	}
	if last != "" {
		c.lastCol = last
	}
	if job != "" {
		c.jobCol = job
	}
	return c
}

// Rows reads the feed. Rows with too few fields are tolerated (the
// reconciler skips them with a diagnostic); a missing required column in
// the header is an error, because it means the wrong file was exported.
func (c *CSVSource) Rows() ([]domain.FeedRow, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // exports pad rows inconsistently
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("feed %s is empty", c.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read feed header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	firstIdx, ok := idx[strings.ToLower(c.firstCol)]
	if !ok {
		return nil, fmt.Errorf("feed %s is missing column %q", c.path, c.firstCol)
	}
	lastIdx, ok := idx[strings.ToLower(c.lastCol)]
	if !ok {
		return nil, fmt.Errorf("feed %s is missing column %q", c.path, c.lastCol)
	}
	jobIdx, ok := idx[strings.ToLower(c.jobCol)]
	if !ok {
		return nil, fmt.Errorf("feed %s is missing column %q", c.path, c.jobCol)
	}

	var rows []domain.FeedRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read feed row: %w", err)
		}
		rows = append(rows, domain.FeedRow{
			FirstName:      field(record, firstIdx),
			LastName:       field(record, lastIdx),
			JobDescription: field(record, jobIdx),
		})
	}
	return rows, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
