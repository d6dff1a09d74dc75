package entity

import "time"

// SettingsID is the primary key of the singleton settings row.
const SettingsID = "1"

// SiteSettings is the site-wide configuration singleton.
type SiteSettings struct {
	ID              string
	Name            string
	Description     string
	ContactEmail    string
	MaintenanceMode bool
	UpdatedAt       time.Time
}

// DefaultSiteSettings returns the record served when no row exists yet,
// so the settings page never fails.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:           SettingsID,
		Name:         "RecipeShare",
		Description:  "Berbagi resep makanan terbaik nusantara.",
		ContactEmail: "admin@recipeshare.com",
	}
}

// AuditLogEntry is one append-only record of an admin action.
type AuditLogEntry struct {
	ID        string
	Action    string
	AdminName string
	Details   string
	CreatedAt time.Time
}
