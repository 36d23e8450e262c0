package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPassenger() *Passenger {
	return &Passenger{
		ID: 7,
		UserDetails: AppUser{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@example.com",
			Roles:     Roles{RolePassenger},
		},
	}
}

func TestPassengerValidate(t *testing.T) {
	assert.NoError(t, validPassenger().Validate())
}

func TestPassengerValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Passenger)
	}{
		{
			name:   "missing email",
			mutate: func(p *Passenger) { p.UserDetails.Email = "" },
		},
		{
			name:   "missing first name",
			mutate: func(p *Passenger) { p.UserDetails.FirstName = "" },
		},
		{
			name:   "no roles",
			mutate: func(p *Passenger) { p.UserDetails.Roles = nil },
		},
		{
			name:   "unknown role",
			mutate: func(p *Passenger) { p.UserDetails.Roles = Roles{"PILOT"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPassenger()
			tt.mutate(p)

			assert.Error(t, p.Validate())
		})
	}
}

func TestRolesValueScanRoundTrip(t *testing.T) {
	roles := Roles{RolePassenger, RoleDriver}

	value, err := roles.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte(`["PASSENGER","DRIVER"]`), value)

	var scanned Roles
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, roles, scanned)
}

func TestRolesScan(t *testing.T) {
	var fromString Roles
	require.NoError(t, fromString.Scan(`["ADMIN"]`))
	assert.Equal(t, Roles{RoleAdmin}, fromString)

	var fromNil Roles
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var fromInt Roles
	assert.Error(t, fromInt.Scan(42))
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		want     string
	}{
		{
			name:     "all parts",
			location: Location{Address: "1 Marina Rd", City: "Lagos", State: "Lagos"},
			want:     "1 Marina Rd, Lagos, Lagos",
		},
		{
			name:     "city only",
			location: Location{City: "Ikeja"},
			want:     "Ikeja",
		},
		{
			name:     "address and state",
			location: Location{Address: "12 Allen Ave", State: "Lagos"},
			want:     "12 Allen Ave, Lagos",
		},
		{
			name:     "empty",
			location: Location{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.location.String())
		})
	}
}
