package app

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfirmed = errors.New("confirmation required")
	ErrNoSession    = errors.New("no active session")
	ErrTaskNotFound = errors.New("task not found")
)

// Confirmer decides a yes/no prompt before a destructive operation runs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Yes approves every prompt; No declines every prompt.
var (
	Yes Confirmer = ConfirmFunc(func(string) bool { return true })
	No  Confirmer = ConfirmFunc(func(string) bool { return false })
)

func confirm(c Confirmer, prompt string) error {
	if c == nil || !c.Confirm(prompt) {
		return ErrNotConfirmed
	}
	return nil
}

func deletePrompt(title string) string {
	if title == "" {
		return "Delete this task?"
	}
	return "Delete this task?\n\n" + title
}

func clearCompletedPrompt(n int) string {
	return fmt.Sprintf("Clear %d completed task(s)?", n)
}

func clearAllPrompt(n int) string {
	return fmt.Sprintf("Clear ALL tasks?\n\nThis will remove %d task(s).", n)
}

func importPrompt(n int) string {
	return fmt.Sprintf("Import backup and replace your current list?\n\nThis will replace %d task(s).", n)
}

const logoutPrompt = "Logout?"
