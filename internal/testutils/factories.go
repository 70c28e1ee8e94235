package testutils

import (
	"time"

	"gtm-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newOwned(workspaceID, ownerID uuid.UUID) models.WorkspaceModel {
	return models.WorkspaceModel{
		BaseModel:   newBase(),
		WorkspaceID: workspaceID,
		OwnerID:     ownerID,
	}
}

// WorkspaceFactory provides methods to create test Workspace data
type WorkspaceFactory struct{}

// Create creates a test Workspace with a unique name
func (f *WorkspaceFactory) Create() *models.Workspace {
	base := newBase()
	return &models.Workspace{
		BaseModel:   base,
		Name:        "ws-" + base.ID.String()[:8],
		DisplayName: "Test Workspace",
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a test User in the workspace. PasswordHash is left for the caller.
func (f *UserFactory) Create(workspaceID uuid.UUID) *models.User {
	base := newBase()
	return &models.User{
		BaseModel:   base,
		WorkspaceID: workspaceID,
		Email:       "user-" + base.ID.String()[:8] + "@example.com",
		Name:        "Jane Doe",
	}
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// Create creates a test Company owned by ownerID
func (f *CompanyFactory) Create(workspaceID, ownerID uuid.UUID) *models.Company {
	revenue := 1000.0
	return &models.Company{
		WorkspaceModel: newOwned(workspaceID, ownerID),
		Name:           "Acme Corp",
		Email:          "hello@acme.test",
		Website:        "https://acme.test",
		Industry:       "Technology",
		Size:           "51-200",
		Stage:          "Prospect",
		Type:           "Customer",
		Revenue:        &revenue,
	}
}

// WithName creates a test Company with a custom name
func (f *CompanyFactory) WithName(workspaceID, ownerID uuid.UUID, name string) *models.Company {
	company := f.Create(workspaceID, ownerID)
	company.Name = name
	return company
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// Create creates a test Contact owned by ownerID
func (f *ContactFactory) Create(workspaceID, ownerID uuid.UUID) *models.Contact {
	return &models.Contact{
		WorkspaceModel: newOwned(workspaceID, ownerID),
		Name:           "John Smith",
		Email:          "john.smith@acme.test",
		Phone:          "+1 555 0100 200",
		Title:          "CTO",
		CompanyName:    "Acme Corp",
		Role:           "Decision Maker",
	}
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// Create creates a test Lead owned by ownerID
func (f *LeadFactory) Create(workspaceID, ownerID uuid.UUID) *models.Lead {
	return &models.Lead{
		WorkspaceModel: newOwned(workspaceID, ownerID),
		Name:           "Globex Inbound",
		Email:          "info@globex.test",
		CompanyName:    "Globex",
		Status:         "New",
		Priority:       "medium",
		Source:         "Website",
	}
}

// DealFactory provides methods to create test Deal data
type DealFactory struct{}

// Create creates a test Deal owned by ownerID
func (f *DealFactory) Create(workspaceID, ownerID uuid.UUID) *models.Deal {
	closeDate := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return &models.Deal{
		WorkspaceModel: newOwned(workspaceID, ownerID),
		Name:           "Acme Expansion",
		CompanyName:    "Acme Corp",
		Stage:          "Proposal",
		Pipeline:       "Upsell",
		Priority:       "high",
		CloseDate:      &closeDate,
	}
}

// ListFactory provides methods to create test List data
type ListFactory struct{}

// Create creates an empty private list of the given kind
func (f *ListFactory) Create(workspaceID, ownerID uuid.UUID, kind models.EntityKind) *models.List {
	return &models.List{
		WorkspaceModel: newOwned(workspaceID, ownerID),
		Name:           "Q4 Targets",
		Type:           kind,
		Access:         models.ListAccessPrivate,
		MemberIDs:      pq.StringArray{},
		Version:        1,
	}
}

// WithMembers creates a list of the given kind already holding ids
func (f *ListFactory) WithMembers(workspaceID, ownerID uuid.UUID, kind models.EntityKind, ids ...uuid.UUID) *models.List {
	list := f.Create(workspaceID, ownerID, kind)
	for _, id := range ids {
		list.MemberIDs = append(list.MemberIDs, id.String())
	}
	return list
}

// Public creates an empty public list of the given kind
func (f *ListFactory) Public(workspaceID, ownerID uuid.UUID, kind models.EntityKind) *models.List {
	list := f.Create(workspaceID, ownerID, kind)
	list.Access = models.ListAccessPublic
	return list
}

// FactorySet provides access to all factories
type FactorySet struct {
	Workspace *WorkspaceFactory
	User      *UserFactory
	Company   *CompanyFactory
	Contact   *ContactFactory
	Lead      *LeadFactory
	Deal      *DealFactory
	List      *ListFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Workspace: &WorkspaceFactory{},
		User:      &UserFactory{},
		Company:   &CompanyFactory{},
		Contact:   &ContactFactory{},
		Lead:      &LeadFactory{},
		Deal:      &DealFactory{},
		List:      &ListFactory{},
	}
}
