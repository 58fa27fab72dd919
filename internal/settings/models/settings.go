// Package models defines the platform settings singleton.
package models

import (
	"strings"
	"time"

	dErrors "ficlear/pkg/domain-errors"
)

// Settings is the platform-wide configuration edited through the admin panel.
type Settings struct {
	PlatformName string    `json:"platformName"`
	SupportEmail string    `json:"supportEmail"`
	SupportPhone string    `json:"supportPhone"`
	PrimaryColor string    `json:"primaryColor"`
	LogoURL      string    `json:"logoUrl"`
	FooterText   string    `json:"footerText"`
	Address      string    `json:"address"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Defaults returns the settings served before an operator saves any.
func Defaults() *Settings {
	return &Settings{
		PlatformName: "FiClear",
		SupportEmail: "support@ficlear.com",
		SupportPhone: "+91 1800-XXX-XXXX",
		PrimaryColor: "#2563eb",
		FooterText:   "© 2026 FiClear. All rights reserved.",
		Address:      "123 Finance Street, Mumbai, India",
	}
}

// Validate checks the fields the site cannot render without.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.PlatformName) == "" {
		return dErrors.New(dErrors.CodeValidation, "platformName is required")
	}
	if s.SupportEmail != "" && !strings.Contains(s.SupportEmail, "@") {
		return dErrors.New(dErrors.CodeValidation, "supportEmail must be an email address")
	}
	return nil
}
