package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/driveline/internal/domain"
)

// ImportResult summarizes a catalog import run.
type ImportResult struct {
	Imported int
	Skipped  []string
}

// Import reads a JSON array of vehicles and upserts each into the repo.
// Vehicles missing an id or model are skipped and reported, not fatal;
// a malformed document is.
func Import(ctx context.Context, repo VehicleRepo, r io.Reader) (ImportResult, error) {
	var res ImportResult

	data, err := io.ReadAll(r)
	if err != nil {
		return res, fmt.Errorf("reading catalog: %w", err)
	}

	var vehicles []domain.CandidateVehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return res, fmt.Errorf("parsing catalog JSON: %w", err)
	}

	for i, v := range vehicles {
		if v.ID == "" || v.Model == "" {
			res.Skipped = append(res.Skipped, fmt.Sprintf("entry %d: missing id or model", i))
			continue
		}
		if v.Features == nil {
			v.Features = []string{}
		}
		if err := repo.Put(ctx, v); err != nil {
			return res, fmt.Errorf("importing vehicle %s: %w", v.ID, err)
		}
		res.Imported++
	}
	return res, nil
}

// ImportFile imports a catalog from a JSON file on disk.
func ImportFile(ctx context.Context, repo VehicleRepo, path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()
	return Import(ctx, repo, f)
}
