package models

import "time"

// Custodian is a directory entry for a person responsible for assets,
// resolved by trimmed case-insensitive name lookup-or-create. Not a login
// user.
type Custodian struct {
	ID                  int        `json:"id" db:"id"`
	IDNo                *string    `json:"id_no" db:"id_no"`
	Name                string     `json:"name" db:"name"`
	PositionDesignation string     `json:"position_designation" db:"position_designation"`
	Email               string     `json:"email" db:"email"`
	Phone               string     `json:"phone" db:"phone"`
	Department          string     `json:"department" db:"department"`
	EmploymentStatus    string     `json:"employment_status" db:"employment_status"`
	DateRegistered      *time.Time `json:"date_registered,omitempty" db:"date_registered"`
}

type CustodianRequest struct {
	IDNo                *string `json:"id_no"`
	Name                string  `json:"name" binding:"required"`
	PositionDesignation string  `json:"position_designation"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Department          string  `json:"department"`
	EmploymentStatus    string  `json:"employment_status"`
}
