package models

import "fmt"

// ListStatus is the lifecycle state of a ShoppingList.
type ListStatus string

const (
	ListStatusActive    ListStatus = "active"
	ListStatusSent      ListStatus = "sent"
	ListStatusCompleted ListStatus = "completed"
)

// ListStatuses lists every accepted ListStatus in declaration order.
var ListStatuses = []ListStatus{ListStatusActive, ListStatusSent, ListStatusCompleted}

// Valid reports whether s is one of the declared list statuses.
func (s ListStatus) Valid() bool {
	switch s {
	case ListStatusActive, ListStatusSent, ListStatusCompleted:
		return true
	}
	return false
}

func (s ListStatus) String() string { return string(s) }

// ParseListStatus converts s into a ListStatus.
func ParseListStatus(s string) (ListStatus, error) {
	st := ListStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown list status %q", s)
	}
	return st, nil
}

// ReminderStatus is the delivery state of a Reminder. Any value may follow any other.
type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusSent      ReminderStatus = "sent"
	ReminderStatusCancelled ReminderStatus = "cancelled"
)

// Valid reports whether s is one of the declared reminder statuses.
func (s ReminderStatus) Valid() bool {
	switch s {
	case ReminderStatusPending, ReminderStatusSent, ReminderStatusCancelled:
		return true
	}
	return false
}

func (s ReminderStatus) String() string { return string(s) }

// ParseReminderStatus converts s into a ReminderStatus.
func ParseReminderStatus(s string) (ReminderStatus, error) {
	st := ReminderStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown reminder status %q", s)
	}
	return st, nil
}
