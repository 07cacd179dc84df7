package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is an inert scheduled record attached to a shopping list.
type Reminder struct {
	ID             uuid.UUID
	ShoppingListID uuid.UUID
	ScheduledAt    time.Time
	Status         ReminderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReminderDraft is the insert shape of a Reminder.
type ReminderDraft struct {
	ShoppingListID uuid.UUID
	ScheduledAt    time.Time
	Status         ReminderStatus
}

// ReminderPatch carries the fields of a reminder update; nil fields are left untouched.
type ReminderPatch struct {
	ScheduledAt *time.Time
	Status      *ReminderStatus
}
