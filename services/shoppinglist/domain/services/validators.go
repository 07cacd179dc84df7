// Package services holds the stateless business rules of the shopping list
// context. They operate on domain types only and run before any storage access.
package services

import (
	"fmt"
	"time"

	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

// ValidateName checks a list or item name: 1..200 runes. The text is stored as given.
func ValidateName(field, name string) error {
	switch n := models.RuneLen(name); {
	case n == 0:
		return domain.InvalidField(field, "This field is required")
	case n > models.MaxNameLength:
		return domain.InvalidField(field, fmt.Sprintf("Maximum length is %d", models.MaxNameLength))
	}
	return nil
}

func validateOptional(field string, s *string, limit int) error {
	if s != nil && models.RuneLen(*s) > limit {
		return domain.InvalidField(field, fmt.Sprintf("Maximum length is %d", limit))
	}
	return nil
}

// ValidateItemDraft checks an item about to be inserted. prefix scopes field
// names for nested items, e.g. "items[2]".
func ValidateItemDraft(prefix string, d models.ItemDraft) error {
	if err := ValidateName(join(prefix, "name"), d.Name); err != nil {
		return err
	}
	if err := validateOptional(join(prefix, "quantity"), d.Quantity, models.MaxQuantityLength); err != nil {
		return err
	}
	return validateOptional(join(prefix, "notes"), d.Notes, models.MaxNotesLength)
}

// NormalizeItemDraft turns empty optional fields into nil.
func NormalizeItemDraft(d models.ItemDraft) models.ItemDraft {
	d.Quantity = models.OptionalText(d.Quantity)
	d.Notes = models.OptionalText(d.Notes)
	return d
}

// ValidateListPatch checks a list update.
func ValidateListPatch(p models.ListPatch) error {
	if p.IsEmpty() {
		return domain.InvalidField("body", "At least one field must be provided")
	}
	if p.Name != nil {
		if err := ValidateName("name", *p.Name); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return domain.InvalidField("status", "Must be one of: active, sent, completed")
	}
	return nil
}

// ValidateItemPatch checks an item update.
func ValidateItemPatch(p models.ItemPatch) error {
	if p.IsEmpty() {
		return domain.InvalidField("body", "At least one field must be provided")
	}
	if p.Name != nil {
		if err := ValidateName("name", *p.Name); err != nil {
			return err
		}
	}
	if err := validateOptional("quantity", p.Quantity, models.MaxQuantityLength); err != nil {
		return err
	}
	return validateOptional("notes", p.Notes, models.MaxNotesLength)
}

// ValidateSchedule rejects a reminder time that is not strictly after now.
func ValidateSchedule(scheduledAt, now time.Time) error {
	if !scheduledAt.After(now) {
		return domain.ErrReminderInPast
	}
	return nil
}

// ValidateReminderPatch checks a reminder update. The schedule is not
// re-checked against the clock, and an empty patch only refreshes updatedAt.
func ValidateReminderPatch(p models.ReminderPatch) error {
	if p.ScheduledAt != nil && p.ScheduledAt.IsZero() {
		return domain.InvalidField("scheduledAt", "This field is required")
	}
	if p.Status != nil && !p.Status.Valid() {
		return domain.InvalidField("status", "Must be one of: pending, sent, cancelled")
	}
	return nil
}

func join(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
