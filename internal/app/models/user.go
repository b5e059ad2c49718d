package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                         int64      `json:"id" db:"id" example:"1"`
	FakultasID                 *int64     `json:"fakultasId,omitempty" db:"fakultas_id"`
	ProgramStudiID             *int64     `json:"programStudiId,omitempty" db:"program_studi_id"`
	RoleAs                     RoleType   `json:"roleAs" db:"role_as" example:"alumni"`
	NomorInduk                 string     `json:"nomorInduk" db:"nomor_induk" example:"2019010101"` // NPM for alumni, NIDN for dosen
	Name                       string     `json:"name" db:"name" example:"Budi Santoso"`
	Email                      string     `json:"email" db:"email" example:"budi@kampus.ac.id"`
	Password                   string     `json:"-" db:"password"` // hashed, excluded from JSON
	LastLogin                  time.Time  `json:"lastLogin" db:"last_login"`
	IsVerified                 bool       `json:"isVerified" db:"is_verified" example:"true"`
	ResetPasswordToken         *string    `json:"-" db:"reset_password_token"`
	ResetPasswordExpiresAt     *time.Time `json:"-" db:"reset_password_expires_at"`
	VerificationToken          *string    `json:"-" db:"verification_token"`
	VerificationTokenExpiresAt *time.Time `json:"-" db:"verification_token_expires_at"`
	CreatedAt                  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt                  time.Time  `json:"updatedAt" db:"updated_at"`
}
