package domain

import (
	"fmt"
	"time"
)

// DealerLead is a buyer's request to be contacted about a vehicle.
type DealerLead struct {
	ID        string    `json:"id"`
	VehicleID string    `json:"vehicleId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Zip       string    `json:"zip"`
	Message   string    `json:"message,omitempty"`
	Consent   bool      `json:"consent"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate enforces the lead contract. Leads without explicit consent are
// rejected; we never store contact details the buyer didn't agree to share.
func (l DealerLead) Validate() error {
	if l.VehicleID == "" {
		return fmt.Errorf("lead missing vehicle id")
	}
	if l.Name == "" {
		return fmt.Errorf("lead missing name")
	}
	if l.Email == "" {
		return fmt.Errorf("lead missing email")
	}
	if len(l.Zip) != 5 {
		return fmt.Errorf("lead zip must be 5 digits, got %q", l.Zip)
	}
	if !l.Consent {
		return fmt.Errorf("lead requires consent")
	}
	return nil
}
