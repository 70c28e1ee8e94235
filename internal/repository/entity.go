package repository

import (
	"context"
	"strings"

	"gtm-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntityRepository handles database operations for one entity table.
// T is the model struct and P its pointer, which carries the Entity methods.
type EntityRepository[T any, P interface {
	*T
	models.Entity
}] struct {
	db   *gorm.DB
	kind models.EntityKind
}

// NewEntityRepository creates a new repository for the model T
func NewEntityRepository[T any, P interface {
	*T
	models.Entity
}](db *gorm.DB) *EntityRepository[T, P] {
	return &EntityRepository[T, P]{db: db, kind: P(new(T)).Kind()}
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *EntityRepository[models.Company, *models.Company] {
	return NewEntityRepository[models.Company](db)
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *EntityRepository[models.Contact, *models.Contact] {
	return NewEntityRepository[models.Contact](db)
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *EntityRepository[models.Lead, *models.Lead] {
	return NewEntityRepository[models.Lead](db)
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) *EntityRepository[models.Deal, *models.Deal] {
	return NewEntityRepository[models.Deal](db)
}

// EntityRepositories indexes the entity repositories by the kind they store
type EntityRepositories map[models.EntityKind]EntityRepositoryInterface

// NewEntityRepositories creates a repository for every entity kind
func NewEntityRepositories(db *gorm.DB) EntityRepositories {
	return NewEntityRepositoriesFrom(
		NewCompanyRepository(db),
		NewContactRepository(db),
		NewLeadRepository(db),
		NewDealRepository(db),
	)
}

// NewEntityRepositoriesFrom indexes the given repositories by kind
func NewEntityRepositoriesFrom(repos ...EntityRepositoryInterface) EntityRepositories {
	index := make(EntityRepositories, len(repos))
	for _, repo := range repos {
		index[repo.Kind()] = repo
	}
	return index
}

// Kind returns the entity kind stored by this repository
func (r *EntityRepository[T, P]) Kind() models.EntityKind {
	return r.kind
}

// Create creates a new record
func (r *EntityRepository[T, P]) Create(ctx context.Context, entity models.Entity) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetByID retrieves a record by ID within a workspace
func (r *EntityRepository[T, P]) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (models.Entity, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, "workspace_id = ? AND id = ?", workspaceID, id).Error
	if err != nil {
		return nil, err
	}
	return P(&record), nil
}

// GetByIDs retrieves the records with the given IDs in one query. Missing IDs are skipped
// and the result order is unspecified.
func (r *EntityRepository[T, P]) GetByIDs(ctx context.Context, workspaceID uuid.UUID, ids []uuid.UUID) ([]models.Entity, error) {
	if len(ids) == 0 {
		return []models.Entity{}, nil
	}

	var records []T
	err := r.db.WithContext(ctx).Where("workspace_id = ? AND id IN ?", workspaceID, ids).Find(&records).Error
	if err != nil {
		return nil, err
	}

	entities := make([]models.Entity, len(records))
	for i := range records {
		entities[i] = P(&records[i])
	}
	return entities, nil
}

// GetByWorkspace retrieves records for a workspace with pagination and an optional name filter
func (r *EntityRepository[T, P]) GetByWorkspace(ctx context.Context, workspaceID uuid.UUID, query string, limit, offset int) ([]models.Entity, int64, error) {
	var records []T
	var total int64

	db := r.db.WithContext(ctx).Model(new(T)).Where("workspace_id = ?", workspaceID)
	if query != "" {
		db = db.Where(`name ILIKE ? ESCAPE '\'`, "%"+escapeLike(query)+"%")
	}

	// Get total count
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	entities := make([]models.Entity, len(records))
	for i := range records {
		entities[i] = P(&records[i])
	}
	return entities, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in a user query match literally
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}

// Update saves every field of an existing record
func (r *EntityRepository[T, P]) Update(ctx context.Context, entity models.Entity) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete deletes a record within a workspace
func (r *EntityRepository[T, P]) Delete(ctx context.Context, workspaceID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
