package service

import (
	"context"
	"errors"
	"testing"

	"github.com/settleup/backend/internal/storage"
)

func TestCreateGroup_CreatorAlwaysMember(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, "Roommates", []string{"bob"}, "alice")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if !contains(group.Members, "alice") {
		t.Errorf("Members = %v, creator alice missing", group.Members)
	}
	if !contains(group.Members, "bob") {
		t.Errorf("Members = %v, bob missing", group.Members)
	}
}

func TestCreateGroup_RequiresName(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)

	if _, err := svc.CreateGroup(context.Background(), "", nil, "alice"); err == nil {
		t.Error("expected error for empty name, got nil")
	}
}

func TestGetGroup_Membership(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, "Trip", nil, "alice")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if _, err := svc.GetGroup(ctx, group.ID, "mallory"); !errors.Is(err, ErrNotMember) {
		t.Errorf("error = %v, want ErrNotMember", err)
	}
	if _, err := svc.GetGroup(ctx, group.ID, "alice"); err != nil {
		t.Errorf("GetGroup as member failed: %v", err)
	}
	if _, err := svc.GetGroup(ctx, "missing", "alice"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateGroup_CannotRemoveSelf(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, "Trip", []string{"bob"}, "alice")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	updated, err := svc.UpdateGroup(ctx, group.ID, "Renamed", []string{"bob"}, "alice")
	if err != nil {
		t.Fatalf("UpdateGroup failed: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("Name = %s, want Renamed", updated.Name)
	}
	if !contains(updated.Members, "alice") {
		t.Errorf("Members = %v, acting user alice removed", updated.Members)
	}
}

func TestDeleteGroup_Membership(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, "Doomed", nil, "alice")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if err := svc.DeleteGroup(ctx, group.ID, "mallory"); !errors.Is(err, ErrNotMember) {
		t.Errorf("error = %v, want ErrNotMember", err)
	}
	if err := svc.DeleteGroup(ctx, group.ID, "alice"); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}
	if _, err := store.GetGroup(ctx, group.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
