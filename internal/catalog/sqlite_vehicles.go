package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/driveline/internal/domain"
)

// SQLiteVehicleRepo implements VehicleRepo using a SQLite database.
type SQLiteVehicleRepo struct {
	db *sql.DB
}

func NewSQLiteVehicleRepo(db *sql.DB) *SQLiteVehicleRepo {
	return &SQLiteVehicleRepo{db: db}
}

const vehicleColumns = `id, model, year, body_style, fuel_type, seating, mpg_combined,
	range_miles, cargo_volume, towing_capacity, awd, msrp, features, safety_rating`

func (r *SQLiteVehicleRepo) Put(ctx context.Context, v domain.CandidateVehicle) error {
	features, err := json.Marshal(v.Features)
	if err != nil {
		return fmt.Errorf("marshaling features: %w", err)
	}

	query := `INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			model = excluded.model, year = excluded.year,
			body_style = excluded.body_style, fuel_type = excluded.fuel_type,
			seating = excluded.seating, mpg_combined = excluded.mpg_combined,
			range_miles = excluded.range_miles, cargo_volume = excluded.cargo_volume,
			towing_capacity = excluded.towing_capacity, awd = excluded.awd,
			msrp = excluded.msrp, features = excluded.features,
			safety_rating = excluded.safety_rating`
	_, err = r.db.ExecContext(ctx, query,
		v.ID, v.Model, v.Year, v.BodyStyle, v.FuelType, v.Seating,
		v.MpgCombined, v.Range, v.CargoVolume, v.TowingCapacity,
		boolToInt(v.AWD), v.MSRP, string(features), v.SafetyRating,
	)
	if err != nil {
		return fmt.Errorf("upserting vehicle: %w", err)
	}
	return nil
}

func (r *SQLiteVehicleRepo) GetByID(ctx context.Context, id string) (domain.CandidateVehicle, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = ?`, id)
	v, err := scanVehicle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CandidateVehicle{}, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	return v, err
}

func (r *SQLiteVehicleRepo) List(ctx context.Context) ([]domain.CandidateVehicle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY model, year`)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func (r *SQLiteVehicleRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.CandidateVehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id IN (`+placeholders+`) ORDER BY model, year`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles by id: %w", err)
	}
	defer rows.Close()
	return collectVehicles(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (domain.CandidateVehicle, error) {
	var v domain.CandidateVehicle
	var awd int
	var features string

	err := row.Scan(&v.ID, &v.Model, &v.Year, &v.BodyStyle, &v.FuelType, &v.Seating,
		&v.MpgCombined, &v.Range, &v.CargoVolume, &v.TowingCapacity,
		&awd, &v.MSRP, &features, &v.SafetyRating)
	if err != nil {
		return v, err
	}

	v.AWD = awd != 0
	if err := json.Unmarshal([]byte(features), &v.Features); err != nil {
		return v, fmt.Errorf("unmarshaling features for %s: %w", v.ID, err)
	}
	return v, nil
}

func collectVehicles(rows *sql.Rows) ([]domain.CandidateVehicle, error) {
	var vehicles []domain.CandidateVehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicles: %w", err)
	}
	return vehicles, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
