package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/settleup/backend/internal/models"
	"github.com/settleup/backend/internal/storage"
)

// ErrNotMember is returned when the acting user is not part of the group.
var ErrNotMember = errors.New("you must be a member of this group")

// GroupService manages groups and membership.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group. The creator is always a member.
func (s *GroupService) CreateGroup(ctx context.Context, name string, members []string, createdBy string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name required")
	}

	group := &models.Group{
		Name:      name,
		Members:   appendMissing(members, createdBy),
		CreatedBy: createdBy,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "members_count", len(group.Members))
	return group, nil
}

// GetGroup retrieves a group; the requesting user must be a member.
func (s *GroupService) GetGroup(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !contains(group.Members, userID) {
		return nil, ErrNotMember
	}
	return group, nil
}

// ListGroups retrieves the groups the user belongs to.
func (s *GroupService) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.store.ListGroups(ctx, userID)
}

// UpdateGroup replaces a group's name and member list.
// Only members may update, and they cannot remove themselves here.
func (s *GroupService) UpdateGroup(ctx context.Context, groupID, name string, members []string, userID string) (*models.Group, error) {
	existing, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !contains(existing.Members, userID) {
		return nil, ErrNotMember
	}

	group := &models.Group{
		ID:      groupID,
		Name:    name,
		Members: appendMissing(members, userID),
	}
	if err := s.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("UpdateGroup failed", "group_id", groupID, "error", err)
		return nil, err
	}

	return s.store.GetGroup(ctx, groupID)
}

// DeleteGroup removes a group and all its expenses and payments.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID, userID string) error {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if !contains(group.Members, userID) {
		return ErrNotMember
	}

	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", groupID, "error", err)
		return err
	}
	slog.Info("Group deleted", "group_id", groupID)
	return nil
}

// contains reports whether id is in ids.
func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// appendMissing returns ids with extra appended unless already present.
func appendMissing(ids []string, extra string) []string {
	if extra == "" || contains(ids, extra) {
		return ids
	}
	return append(ids, extra)
}
