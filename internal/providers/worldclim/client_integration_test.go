//go:build integration

package worldclim

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestClient_GetBioPoint_Integration(t *testing.T) {
	baseURL := os.Getenv("WORLDCLIM_SAMPLER_URL")
	if baseURL == "" {
		t.Skip("WORLDCLIM_SAMPLER_URL not set, skipping integration test")
	}

	// Test coordinates: Brasília area, well inside land coverage
	lat := -15.8
	lon := -47.9

	client := NewClientWithBaseURL(slog.Default(), baseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	t.Logf("Sampling bioclim variables at lat=%f, lon=%f", lat, lon)

	resp, err := client.GetBioPoint(ctx, lat, lon)
	if err != nil {
		t.Fatalf("Failed to get bio point: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp == nil {
		t.Fatal("Response is nil")
	}

	if len(resp.Values) != 19 {
		t.Errorf("Values has %d entries, want 19", len(resp.Values))
	}

	// Sanity check on BIO12 (annual precipitation) - central Brazil should
	// land somewhere between 500 and 3000 mm.
	bio12 := resp.Values["BIO12"]
	if bio12 == nil {
		t.Fatal("BIO12 is missing for a land coordinate")
	}
	if *bio12 < 500 || *bio12 > 3000 {
		t.Errorf("BIO12 seems unreasonable: %v mm", *bio12)
	}
}
