package planner

import (
	"strings"

	"daily-planner-api/internal/models"
)

// ValidateIdentity trims and checks a login form. The email check only requires an "@".
func ValidateIdentity(name, email string) (models.Identity, error) {
	id := models.Identity{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if id.Name == "" {
		return models.Identity{}, invalid("name", "Please enter your name.", ErrInvalidName)
	}
	if id.Email == "" || !strings.Contains(id.Email, "@") {
		return models.Identity{}, invalid("email", "Please enter a valid email address.", ErrInvalidEmail)
	}
	return id, nil
}

// SameIdentity compares two identities by email, case-insensitively.
func SameIdentity(a, b models.Identity) bool {
	return strings.EqualFold(a.Email, b.Email)
}
