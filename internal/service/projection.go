package service

import (
	"context"
	"fmt"
	"time"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/export"
	"gtm-crm-backend/internal/logger"
	"gtm-crm-backend/internal/metrics"
	"gtm-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// ProjectionService resolves list members into entity records
type ProjectionService struct {
	lists    repository.ListRepositoryInterface
	entities repository.EntityRepositories
	persistence
}

// NewProjectionService creates a new projection service
func NewProjectionService(lists repository.ListRepositoryInterface, entities repository.EntityRepositories, timeout time.Duration) *ProjectionService {
	return &ProjectionService{
		lists:       lists,
		entities:    entities,
		persistence: newPersistence(timeout),
	}
}

// Projection is a list with its resolved members. Orphaned holds member IDs that no
// longer refer to an entity.
type Projection struct {
	List     *models.List
	Members  []models.Entity
	Orphaned []string
}

// ListMembersResponse represents the resolved members of a list
type ListMembersResponse struct {
	List     ListResponse        `json:"list"`
	Members  []map[string]string `json:"members"`
	Orphaned []string            `json:"orphaned"`
}

// ExportFile is a rendered export ready to be sent as an attachment
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ResolveMembers fetches the records referenced by a list in member order. Members
// whose entity was deleted or whose ID is malformed are skipped and reported as orphaned.
func (s *ProjectionService) ResolveMembers(ctx context.Context, list *models.List) (*Projection, error) {
	projection := &Projection{List: list, Members: []models.Entity{}, Orphaned: []string{}}
	if len(list.MemberIDs) == 0 {
		return projection, nil
	}

	repo, ok := s.entities[list.Type]
	if !ok {
		return nil, apperrors.ErrListNotListable
	}

	ids := make([]uuid.UUID, 0, len(list.MemberIDs))
	for _, raw := range list.MemberIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			projection.Orphaned = append(projection.Orphaned, raw)
			continue
		}
		ids = append(ids, id)
	}

	found := map[uuid.UUID]models.Entity{}
	if len(ids) > 0 {
		rctx, cancel := s.read(ctx)
		defer cancel()
		entities, err := repo.GetByIDs(rctx, list.WorkspaceID, ids)
		if err != nil {
			return nil, apperrors.FromPersistence("resolve list members", err, apperrors.ErrListNotFound)
		}
		for _, entity := range entities {
			found[entity.GetID()] = entity
		}
	}

	for _, id := range ids {
		entity, ok := found[id]
		if !ok {
			projection.Orphaned = append(projection.Orphaned, id.String())
			continue
		}
		projection.Members = append(projection.Members, entity)
	}

	if n := len(projection.Orphaned); n > 0 {
		metrics.OrphanedMembers.Add(float64(n))
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"list_id":  list.ID.String(),
			"orphaned": projection.Orphaned,
		}).Warn("list references missing entities")
	}
	return projection, nil
}

// GetMembers loads a visible list and resolves its members
func (s *ProjectionService) GetMembers(ctx context.Context, session auth.Session, listID uuid.UUID) (*ListMembersResponse, error) {
	projection, err := s.project(ctx, session, listID)
	if err != nil {
		return nil, err
	}

	members := make([]map[string]string, len(projection.Members))
	for i, entity := range projection.Members {
		members[i] = entityFields(entity)
	}
	return &ListMembersResponse{
		List:     *toListResponse(projection.List),
		Members:  members,
		Orphaned: projection.Orphaned,
	}, nil
}

// ExportMembers renders the resolved members of a visible list as an XLSX workbook
func (s *ProjectionService) ExportMembers(ctx context.Context, session auth.Session, listID uuid.UUID) (*ExportFile, error) {
	projection, err := s.project(ctx, session, listID)
	if err != nil {
		return nil, err
	}

	data, err := export.ListMembersXLSX(projection.List, projection.Members)
	if err != nil {
		return nil, fmt.Errorf("failed to export list: %w", err)
	}
	return &ExportFile{
		Name:        export.FileName(projection.List),
		ContentType: export.ContentType,
		Data:        data,
	}, nil
}

func (s *ProjectionService) project(ctx context.Context, session auth.Session, listID uuid.UUID) (*Projection, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	rctx, cancel := s.read(ctx)
	defer cancel()
	list, err := loadVisibleList(rctx, s.lists, session, listID)
	if err != nil {
		return nil, err
	}
	return s.ResolveMembers(ctx, list)
}

// entityFields flattens an entity into its field map plus identifiers
func entityFields(entity models.Entity) map[string]string {
	fields := entity.Fields()
	fields["id"] = entity.GetID().String()
	fields["kind"] = string(entity.Kind())
	return fields
}
