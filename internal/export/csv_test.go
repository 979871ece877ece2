package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"easy-bioclim/internal/bioclim"
	"easy-bioclim/internal/types"
)

func fullRow(name string, longitude, latitude, offset float64) bioclim.ResultRow {
	values := make(map[string]*float64, 19)
	for i, code := range types.BioCodes() {
		v := offset + float64(i)
		values[code] = &v
	}
	return bioclim.ResultRow{
		Name:      name,
		Longitude: longitude,
		Latitude:  latitude,
		Variables: values,
	}
}

func missingRow(name string, longitude, latitude float64) bioclim.ResultRow {
	vector := bioclim.NewMissingVector("no data at coordinate")
	return bioclim.ResultRow{
		Name:       name,
		Longitude:  longitude,
		Latitude:   latitude,
		Variables:  vector.Values,
		FetchError: vector.FetchError,
	}
}

func TestWriteCSV(t *testing.T) {
	table := &bioclim.ResultTable{
		Rows: []bioclim.ResultRow{
			fullRow("SiteA", -47.9, -15.8, 100),
			missingRow("SiteB", -43.2, -22.9),
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table, ';'); err != nil {
		t.Fatalf("WriteCSV() unexpected error = %v", err)
	}

	reader := csv.NewReader(&buf)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("failed to re-parse output: %v", err)
	}

	// Header plus one record per row
	if len(records) != 3 {
		t.Fatalf("record count = %d, want 3", len(records))
	}

	header := records[0]
	wantHeader := Columns()
	if len(header) != 22 {
		t.Fatalf("header has %d columns, want 22", len(header))
	}
	for i, col := range wantHeader {
		if header[i] != col {
			t.Errorf("header column %d = %q, want %q", i, header[i], col)
		}
	}

	// Full row carries every value
	siteA := records[1]
	if siteA[0] != "SiteA" || siteA[1] != "-47.9" || siteA[2] != "-15.8" {
		t.Errorf("SiteA identity columns = %v", siteA[:3])
	}
	for i := range types.BioCodes() {
		want := strconv.FormatFloat(100+float64(i), 'f', -1, 64)
		if siteA[3+i] != want {
			t.Errorf("SiteA column %s = %q, want %q", wantHeader[3+i], siteA[3+i], want)
		}
	}

	// Failed row keeps identity, renders every variable as empty
	siteB := records[2]
	if siteB[0] != "SiteB" || siteB[1] != "-43.2" || siteB[2] != "-22.9" {
		t.Errorf("SiteB identity columns = %v", siteB[:3])
	}
	for i := range types.BioCodes() {
		if siteB[3+i] != "" {
			t.Errorf("SiteB column %s = %q, want empty", wantHeader[3+i], siteB[3+i])
		}
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	table := &bioclim.ResultTable{
		Rows: []bioclim.ResultRow{
			fullRow("SiteA", -47.9, -15.8, 100),
			fullRow("SiteB", -43.2, -22.9, 200),
			missingRow("SiteC", -50.2, -27.86),
		},
	}

	for _, delimiter := range []rune{';', ','} {
		var buf bytes.Buffer
		if err := WriteCSV(&buf, table, delimiter); err != nil {
			t.Fatalf("WriteCSV(%q) unexpected error = %v", delimiter, err)
		}

		reader := csv.NewReader(&buf)
		reader.Comma = delimiter
		records, err := reader.ReadAll()
		if err != nil {
			t.Fatalf("failed to re-parse %q output: %v", delimiter, err)
		}

		if len(records) != len(table.Rows)+1 {
			t.Fatalf("record count = %d, want %d", len(records), len(table.Rows)+1)
		}

		codes := types.BioCodes()
		for i, row := range table.Rows {
			record := records[i+1]
			if len(record) != 22 {
				t.Fatalf("row %d has %d fields, want 22", i, len(record))
			}
			if record[0] != row.Name {
				t.Errorf("row %d name = %q, want %q", i, record[0], row.Name)
			}

			lon, err := strconv.ParseFloat(record[1], 64)
			if err != nil || lon != row.Longitude {
				t.Errorf("row %d longitude = %q, want %v", i, record[1], row.Longitude)
			}
			lat, err := strconv.ParseFloat(record[2], 64)
			if err != nil || lat != row.Latitude {
				t.Errorf("row %d latitude = %q, want %v", i, record[2], row.Latitude)
			}

			for j, code := range codes {
				field := record[3+j]
				value := row.Variables[code]
				if value == nil {
					if field != "" {
						t.Errorf("row %d %s = %q, want empty", i, code, field)
					}
					continue
				}
				parsed, err := strconv.ParseFloat(field, 64)
				if err != nil || parsed != *value {
					t.Errorf("row %d %s = %q, want %v", i, code, field, *value)
				}
			}
		}
	}
}
