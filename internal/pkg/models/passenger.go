package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Role represents a capability granted to an application user
type Role string

const (
	RolePassenger Role = "PASSENGER"
	RoleDriver    Role = "DRIVER"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether the role is one of the known enum values
func (r Role) Valid() bool {
	switch r {
	case RolePassenger, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

// Roles is stored as a JSONB column
type Roles []Role

// Value implements driver.Valuer for database storage
func (r Roles) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for database retrieval
func (r *Roles) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	}
	return fmt.Errorf("cannot scan %T into Roles", src)
}

// AppUser holds the user-profile aggregate wrapped by a Passenger
type AppUser struct {
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"password,omitempty" db:"password"`
	Phone     string    `json:"phone" db:"phone"`
	Roles     Roles     `json:"roles" db:"roles"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Passenger represents a registered passenger. The identifier is assigned by
// the persistence layer on creation and never changes afterwards.
type Passenger struct {
	ID          int64   `json:"id" db:"id"`
	UserDetails AppUser `json:"userDetails"`
}

// Validate checks that a passenger record is structurally sound. It is applied
// to records materialized from a patched document before they are persisted.
func (p *Passenger) Validate() error {
	if p.UserDetails.Email == "" {
		return fmt.Errorf("email is required")
	}
	if p.UserDetails.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if len(p.UserDetails.Roles) == 0 {
		return fmt.Errorf("at least one role is required")
	}
	for _, role := range p.UserDetails.Roles {
		if !role.Valid() {
			return fmt.Errorf("invalid role %q", role)
		}
	}
	return nil
}

// RegisterPassengerRequest is the payload for passenger registration
type RegisterPassengerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	ID      int64  `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PassengerPage is one page of the passenger listing
type PassengerPage struct {
	Passengers []Passenger `json:"passengers"`
	PageNumber int         `json:"pageNumber"`
	PageSize   int         `json:"pageSize"`
	TotalCount int64       `json:"totalCount"`
}

// PassengerRegisteredEvent is published after a passenger is created
type PassengerRegisteredEvent struct {
	EventID      string    `json:"event_id"`
	PassengerID  int64     `json:"passenger_id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}
