package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.csv")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRowsReadsOnlyNamedColumns(t *testing.T) {
	path := writeFeed(t, strings.Join([]string{
		"Employee ID,First Name,Last Name,Job Description,Hours",
		"101,Jane,Doe,Site A,8",
		"102, Amy , Ohm ,Sick,0",
		"103,Ben,Volt,Some New Yard,8",
	}, "\n"))

	rows, err := NewCSVSource(path).Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].FirstName != "Jane" || rows[0].LastName != "Doe" || rows[0].JobDescription != "Site A" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	// Whitespace around fields is trimmed.
	if rows[1].FirstName != "Amy" || rows[1].LastName != "Ohm" {
		t.Errorf("rows[1] = %+v, want trimmed names", rows[1])
	}
	// Order is preserved.
	if rows[2].FirstName != "Ben" {
		t.Errorf("rows[2] = %+v, want Ben last", rows[2])
	}
}

func TestRowsColumnOrderDoesNotMatter(t *testing.T) {
	path := writeFeed(t, strings.Join([]string{
		"Job Description,Last Name,First Name",
		"Site A,Doe,Jane",
	}, "\n"))

	rows, err := NewCSVSource(path).Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if rows[0].FirstName != "Jane" || rows[0].JobDescription != "Site A" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}

func TestRowsToleratesShortRows(t *testing.T) {
	path := writeFeed(t, strings.Join([]string{
		"First Name,Last Name,Job Description",
		"Jane,Doe",
		"Amy,Ohm,Site A",
	}, "\n"))

	rows, err := NewCSVSource(path).Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].JobDescription != "" {
		t.Errorf("short row job description = %q, want empty", rows[0].JobDescription)
	}
}

func TestRowsMissingColumnFails(t *testing.T) {
	path := writeFeed(t, strings.Join([]string{
		"First Name,Surname,Job Description",
		"Jane,Doe,Site A",
	}, "\n"))

	if _, err := NewCSVSource(path).Rows(); err == nil {
		t.Fatal("expected error for missing Last Name column")
	}

	// But renamed columns work when declared.
	rows, err := NewCSVSource(path).WithColumns("", "Surname", "").Rows()
	if err != nil {
		t.Fatalf("Rows with column override: %v", err)
	}
	if rows[0].LastName != "Doe" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}

func TestRowsHeaderMatchingIsCaseInsensitive(t *testing.T) {
	path := writeFeed(t, strings.Join([]string{
		"FIRST NAME,last name,Job description",
		"Jane,Doe,Site A",
	}, "\n"))

	rows, err := NewCSVSource(path).Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if rows[0].FirstName != "Jane" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}
