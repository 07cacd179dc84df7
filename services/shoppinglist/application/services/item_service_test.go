package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/shoppinglist/services/shoppinglist/application/services"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain/models"
)

func TestItemService_AddToMissingList(t *testing.T) {
	spy := newSpy(newStore(t))
	svc := newServices(t, spy, nil)
	ctx := context.Background()

	drafts := []struct {
		name  string
		draft models.ItemDraft
	}{
		{"valid", models.ItemDraft{Name: "milk"}},
		{"empty name", models.ItemDraft{Name: ""}},
		{"quantity too long", models.ItemDraft{Name: "milk", Quantity: ptr(strings.Repeat("q", 101))}},
	}
	for _, tt := range drafts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Item.Add(ctx, uuid.New(), tt.draft)
			if !errors.Is(err, domain.ErrListNotFound) {
				t.Fatalf("expected ErrListNotFound, got %v", err)
			}
			if errors.Is(err, domain.ErrValidation) {
				t.Fatalf("must not be a validation error: %v", err)
			}
		})
	}
	if spy.state.listLookups != len(drafts) {
		t.Errorf("expected one list lookup per call, got %d", spy.state.listLookups)
	}
}

func TestItemService_AddValidation(t *testing.T) {
	svc := newServices(t, newStore(t), nil)
	ctx := context.Background()
	l, _ := svc.List.Create(ctx, services.CreateListInput{Name: "x"})

	tests := []struct {
		name  string
		draft models.ItemDraft
		field string
	}{
		{"missing name", models.ItemDraft{}, "name"},
		{"name too long", models.ItemDraft{Name: strings.Repeat("n", 201)}, "name"},
		{"quantity too long", models.ItemDraft{Name: "ok", Quantity: ptr(strings.Repeat("q", 101))}, "quantity"},
		{"notes too long", models.ItemDraft{Name: "ok", Notes: ptr(strings.Repeat("n", 501))}, "notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Item.Add(ctx, l.ID, tt.draft)
			var fe *domain.FieldError
			if !errors.As(err, &fe) || fe.Field != tt.field {
				t.Fatalf("expected field error on %q, got %v", tt.field, err)
			}
		})
	}

	boundary, err := svc.Item.Add(ctx, l.ID, models.ItemDraft{
		Name:     strings.Repeat("n", 200),
		Quantity: ptr(strings.Repeat("q", 100)),
		Notes:    ptr(strings.Repeat("é", 500)),
	})
	if err != nil {
		t.Fatalf("boundary lengths must be accepted: %v", err)
	}
	if *boundary.Notes != strings.Repeat("é", 500) {
		t.Error("multi-byte notes altered")
	}
}

func TestItemService_UpdateAndDelete(t *testing.T) {
	svc := newServices(t, newStore(t), nil)
	ctx := context.Background()
	l, _ := svc.List.Create(ctx, services.CreateListInput{Name: "x"})
	other, _ := svc.List.Create(ctx, services.CreateListInput{Name: "y"})
	item, err := svc.Item.Add(ctx, l.ID, models.ItemDraft{Name: "milk", Quantity: ptr("1l"), Notes: ptr("oat")})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	updated, found, err := svc.Item.Update(ctx, l.ID, item.ID, models.ItemPatch{Name: ptr("oat milk")})
	if err != nil || !found {
		t.Fatalf("Update: found=%v err=%v", found, err)
	}
	if updated.Name != "oat milk" || *updated.Quantity != "1l" || *updated.Notes != "oat" {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if !updated.CreatedAt.Equal(item.CreatedAt) || updated.UpdatedAt.Before(item.UpdatedAt) {
		t.Errorf("timestamps: %v/%v after %v/%v", updated.CreatedAt, updated.UpdatedAt, item.CreatedAt, item.UpdatedAt)
	}

	cleared, _, err := svc.Item.Update(ctx, l.ID, item.ID, models.ItemPatch{Notes: ptr("")})
	if err != nil || cleared.Notes != nil {
		t.Fatalf("expected notes cleared, got %+v err=%v", cleared, err)
	}

	if _, found, err := svc.Item.Update(ctx, other.ID, item.ID, models.ItemPatch{Name: ptr("x")}); err != nil || found {
		t.Errorf("update under wrong list: found=%v err=%v", found, err)
	}
	if _, found, err := svc.Item.Update(ctx, l.ID, uuid.New(), models.ItemPatch{Name: ptr("x")}); err != nil || found {
		t.Errorf("update of missing item: found=%v err=%v", found, err)
	}
	if _, _, err := svc.Item.Update(ctx, l.ID, item.ID, models.ItemPatch{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error for empty patch, got %v", err)
	}

	if deleted, err := svc.Item.Delete(ctx, other.ID, item.ID); err != nil || deleted {
		t.Errorf("delete under wrong list: deleted=%v err=%v", deleted, err)
	}
	if deleted, err := svc.Item.Delete(ctx, l.ID, item.ID); err != nil || !deleted {
		t.Errorf("Delete: deleted=%v err=%v", deleted, err)
	}
	if _, found, _ := svc.Item.GetByID(ctx, l.ID, item.ID); found {
		t.Error("deleted item still reachable")
	}
}
