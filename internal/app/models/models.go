package models

// RoleType defines the role carried by an access token
type RoleType string

const (
	RoleRegistrar RoleType = "REGISTRAR" // may mutate rosters and the catalog
	RoleViewer    RoleType = "VIEWER"
)
