package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/google/uuid"
)

// SQLiteLeadRepo implements LeadRepo using a SQLite database.
type SQLiteLeadRepo struct {
	db *sql.DB
}

func NewSQLiteLeadRepo(db *sql.DB) *SQLiteLeadRepo {
	return &SQLiteLeadRepo{db: db}
}

// Create validates and stores a lead. A missing ID or CreatedAt is filled
// in here so callers can submit bare form data.
func (r *SQLiteLeadRepo) Create(ctx context.Context, lead domain.DealerLead) error {
	if err := lead.Validate(); err != nil {
		return err
	}
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO leads (id, vehicle_id, name, email, phone, zip, message, consent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		lead.ID, lead.VehicleID, lead.Name, lead.Email, lead.Phone,
		lead.Zip, lead.Message, boolToInt(lead.Consent),
		lead.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	return nil
}

func (r *SQLiteLeadRepo) List(ctx context.Context) ([]domain.DealerLead, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, vehicle_id, name, email, phone, zip, message, consent, created_at FROM leads ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []domain.DealerLead
	for rows.Next() {
		var l domain.DealerLead
		var consent int
		var createdAt string
		if err := rows.Scan(&l.ID, &l.VehicleID, &l.Name, &l.Email, &l.Phone,
			&l.Zip, &l.Message, &consent, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		l.Consent = consent != 0
		l.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing lead created_at: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leads: %w", err)
	}
	return leads, nil
}

var _ LeadRepo = (*SQLiteLeadRepo)(nil)
var _ VehicleRepo = (*SQLiteVehicleRepo)(nil)
