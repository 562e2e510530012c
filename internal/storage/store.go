// Package storage persists planner state as string values under namespaced keys.
package storage

import (
	"context"
	"strings"
)

// Store is the key-value capability the planner persists through. A missing key is reported
// with ok=false and a nil error; errors are reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// DefaultNamespace prefixes every key.
const DefaultNamespace = "ai-smart-daily-planner"

// Keys builds the storage keys of one installation.
type Keys struct {
	Namespace string
}

// NewKeys returns Keys for namespace, falling back to DefaultNamespace.
func NewKeys(namespace string) Keys {
	if strings.TrimSpace(namespace) == "" {
		namespace = DefaultNamespace
	}
	return Keys{Namespace: namespace}
}

func (k Keys) ns() string {
	if k.Namespace == "" {
		return DefaultNamespace
	}
	return k.Namespace
}

// Tasks is the task list key of one identity.
func (k Keys) Tasks(email string) string {
	return k.ns() + ".tasks.v1::" + strings.ToLower(email)
}

// Stats is the gamification stats key of one identity.
func (k Keys) Stats(email string) string {
	return k.ns() + ".stats.v1::" + strings.ToLower(email)
}

// User holds the active identity.
func (k Keys) User() string {
	return k.ns() + ".user.v1"
}

// Theme holds the active theme id.
func (k Keys) Theme() string {
	return k.ns() + ".theme.v2"
}

// LegacyTheme is read only, for installations that predate the theme catalog.
func (k Keys) LegacyTheme() string {
	return k.ns() + ".theme.v1"
}
