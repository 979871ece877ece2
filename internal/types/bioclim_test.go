package types

import (
	"fmt"
	"testing"
)

func TestBioVariables(t *testing.T) {
	if len(BioVariables) != 19 {
		t.Fatalf("BioVariables has %d entries, want 19", len(BioVariables))
	}

	for i, v := range BioVariables {
		want := fmt.Sprintf("BIO%d", i+1)
		if v.Code != want {
			t.Errorf("variable %d code = %q, want %q", i, v.Code, want)
		}
		if v.Description == "" {
			t.Errorf("%s has no description", v.Code)
		}
		if v.Unit == "" {
			t.Errorf("%s has no unit", v.Code)
		}
		if v.Scale <= 0 {
			t.Errorf("%s scale = %v, want positive", v.Code, v.Scale)
		}
	}
}

func TestBioCodes(t *testing.T) {
	codes := BioCodes()
	if len(codes) != 19 {
		t.Fatalf("BioCodes() has %d entries, want 19", len(codes))
	}
	if codes[0] != "BIO1" || codes[18] != "BIO19" {
		t.Errorf("BioCodes() = %v, want BIO1..BIO19 in order", codes)
	}
}

func TestCoordsInRange(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		expected  bool
	}{
		{
			name:      "valid coordinate",
			latitude:  -15.8,
			longitude: -47.9,
			expected:  true,
		},
		{
			name:      "boundary values",
			latitude:  90,
			longitude: -180,
			expected:  true,
		},
		{
			name:      "latitude too large",
			latitude:  90.1,
			longitude: 0,
			expected:  false,
		},
		{
			name:      "longitude too small",
			latitude:  0,
			longitude: -180.5,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoords(tt.latitude, tt.longitude)
			if got := c.InRange(); got != tt.expected {
				t.Errorf("InRange() = %v, want %v", got, tt.expected)
			}
		})
	}
}
