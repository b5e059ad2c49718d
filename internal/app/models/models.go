package models

import "github.com/hanifz/tracerstudy/internal/app/models/dto/enums"

// RoleType aliases the shared role enum so model code can reference it
// without importing the enums package everywhere.
type RoleType = enums.RoleType

const (
	RoleAdmin  = enums.RoleAdmin
	RoleAlumni = enums.RoleAlumni
	RoleDosen  = enums.RoleDosen
)
