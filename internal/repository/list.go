package repository

import (
	"context"

	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListRepository handles database operations for lists
type ListRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

// Create creates a new list
func (r *ListRepository) Create(ctx context.Context, list *models.List) error {
	if list.MemberIDs == nil {
		list.MemberIDs = pq.StringArray{}
	}
	if list.Version == 0 {
		list.Version = 1
	}
	return r.db.WithContext(ctx).Create(list).Error
}

// GetByID retrieves a list by ID within a workspace
func (r *ListRepository) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.List, error) {
	var list models.List
	err := r.db.WithContext(ctx).First(&list, "workspace_id = ? AND id = ?", workspaceID, id).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// GetVisible retrieves the lists a user may resolve: public lists of the workspace and the
// user's own private lists. An empty kind returns lists of every type.
func (r *ListRepository) GetVisible(ctx context.Context, workspaceID, userID uuid.UUID, kind models.EntityKind, limit, offset int) ([]models.List, int64, error) {
	var lists []models.List
	var total int64

	db := r.db.WithContext(ctx).Model(&models.List{}).
		Where("workspace_id = ? AND (access = ? OR owner_id = ?)", workspaceID, models.ListAccessPublic, userID)
	if kind != "" {
		db = db.Where("type = ?", kind)
	}

	// Get total count
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&lists).Error
	if err != nil {
		return nil, 0, err
	}

	return lists, total, nil
}

// UpdateDetails writes name and access if the list is still at list.Version
func (r *ListRepository) UpdateDetails(ctx context.Context, list *models.List) (*models.List, error) {
	return r.compareAndSwap(ctx, list.ID, list.Version, map[string]interface{}{
		"name":   list.Name,
		"access": list.Access,
	})
}

// UpdateMembers replaces member_ids if the stored version still equals expectedVersion.
// A stale version returns errors.ErrListConflict.
func (r *ListRepository) UpdateMembers(ctx context.Context, id uuid.UUID, memberIDs []string, expectedVersion int64) (*models.List, error) {
	return r.compareAndSwap(ctx, id, expectedVersion, map[string]interface{}{
		"member_ids": pq.StringArray(memberIDs),
	})
}

func (r *ListRepository) compareAndSwap(ctx context.Context, id uuid.UUID, expectedVersion int64, updates map[string]interface{}) (*models.List, error) {
	updates["version"] = gorm.Expr("version + 1")

	var list models.List
	result := r.db.WithContext(ctx).Model(&list).
		Clauses(clause.Returning{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.List{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, apperrors.ErrListConflict
	}

	return &list, nil
}

// Delete deletes a list. Referenced entities are left untouched.
func (r *ListRepository) Delete(ctx context.Context, workspaceID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&models.List{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
