package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/config"
	"gtm-crm-backend/internal/database"
	"gtm-crm-backend/internal/database/models"
	"gtm-crm-backend/internal/repository"
	"gtm-crm-backend/internal/validation"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the fixture files
type UserData struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type WorkspaceData struct {
	Name        string     `yaml:"name"`
	DisplayName string     `yaml:"display_name"`
	Users       []UserData `yaml:"users"`
}

type RecordData struct {
	Workspace string            `yaml:"workspace"`
	Owner     string            `yaml:"owner"`
	Fields    map[string]string `yaml:"fields"`
}

type ListData struct {
	Workspace string   `yaml:"workspace"`
	Owner     string   `yaml:"owner"`
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Access    string   `yaml:"access"`
	Members   []string `yaml:"members"`
}

// File structures
type WorkspacesFile struct {
	Workspaces []WorkspaceData `yaml:"workspaces"`
}

type RecordsFile struct {
	Records []RecordData `yaml:"records"`
}

type ListsFile struct {
	Lists []ListData `yaml:"lists"`
}

// recordFiles maps fixture file name fragments to the kind they hold
var recordFiles = []struct {
	fragment string
	kind     models.EntityKind
}{
	{"companies", models.KindCompany},
	{"contacts", models.KindContact},
	{"leads", models.KindLead},
	{"deals", models.KindDeal},
}

// seed carries lookups built while loading, keyed by fixture names
type seed struct {
	ctx        context.Context
	db         *gorm.DB
	workspace  *repository.WorkspaceRepository
	user       *repository.UserRepository
	entities   repository.EntityRepositories
	lists      *repository.ListRepository
	workspaces map[string]*models.Workspace
	users      map[string]*models.User
	// records is keyed by workspace name then record name
	records map[string]map[string]models.Entity
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	s := &seed{
		ctx:        context.Background(),
		db:         db,
		workspace:  repository.NewWorkspaceRepository(db),
		user:       repository.NewUserRepository(db),
		entities:   repository.NewEntityRepositories(db),
		lists:      repository.NewListRepository(db),
		workspaces: make(map[string]*models.Workspace),
		users:      make(map[string]*models.User),
		records:    make(map[string]map[string]models.Entity),
	}

	var workspacesFile WorkspacesFile
	if err := loadYAML(dataDir, "workspaces", &workspacesFile, func(f *WorkspacesFile) {
		workspacesFile.Workspaces = append(workspacesFile.Workspaces, f.Workspaces...)
	}); err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	workspaceCreated, userCreated, userTotal := 0, 0, 0
	for _, data := range workspacesFile.Workspaces {
		workspace, created, err := s.createWorkspace(data)
		if err != nil {
			return fmt.Errorf("failed to create workspace %s: %w", data.Name, err)
		}
		if created {
			workspaceCreated++
		}
		for _, userData := range data.Users {
			userTotal++
			created, err := s.createUser(workspace, userData)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
			}
			if created {
				userCreated++
			}
		}
	}
	log.Printf("Workspaces: %d created, %d total", workspaceCreated, len(workspacesFile.Workspaces))
	log.Printf("Users: %d created, %d total", userCreated, userTotal)

	for _, rf := range recordFiles {
		var records RecordsFile
		if err := loadYAML(dataDir, rf.fragment, &records, func(f *RecordsFile) {
			records.Records = append(records.Records, f.Records...)
		}); err != nil {
			return fmt.Errorf("failed to load %s: %w", rf.fragment, err)
		}

		created := 0
		for _, data := range records.Records {
			ok, err := s.createRecord(rf.kind, data)
			if err != nil {
				log.Printf("Warning: failed to create %s %q: %v", strings.ToLower(string(rf.kind)), data.Fields[models.FieldName], err)
				continue
			}
			if ok {
				created++
			}
		}
		log.Printf("%s: %d created, %d total", rf.kind, created, len(records.Records))
	}

	var lists ListsFile
	if err := loadYAML(dataDir, "lists", &lists, func(f *ListsFile) {
		lists.Lists = append(lists.Lists, f.Lists...)
	}); err != nil {
		return fmt.Errorf("failed to load lists: %w", err)
	}

	listCreated := 0
	for _, data := range lists.Lists {
		ok, err := s.createList(data)
		if err != nil {
			log.Printf("Warning: failed to create list %q: %v", data.Name, err)
			continue
		}
		if ok {
			listCreated++
		}
	}
	log.Printf("Lists: %d created, %d total", listCreated, len(lists.Lists))

	return nil
}

// loadYAML decodes every .yaml file under dataDir whose path contains fragment.
// target is decoded fresh for each file and handed to merge.
func loadYAML[T any](dataDir, fragment string, target *T, merge func(*T)) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), fragment) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		merge(&file)
		return nil
	})
}

func (s *seed) createWorkspace(data WorkspaceData) (*models.Workspace, bool, error) {
	existing, err := s.workspace.GetByName(s.ctx, data.Name)
	if err == nil {
		s.workspaces[data.Name] = existing
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query workspace: %w", err)
	}

	workspace := &models.Workspace{Name: data.Name, DisplayName: data.DisplayName}
	if err := s.workspace.Create(s.ctx, workspace); err != nil {
		return nil, false, fmt.Errorf("failed to create workspace: %w", err)
	}
	s.workspaces[data.Name] = workspace
	return workspace, true, nil
}

func (s *seed) createUser(workspace *models.Workspace, data UserData) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	existing, err := s.user.GetByEmail(s.ctx, email)
	if err == nil {
		s.users[email] = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return false, err
	}
	user := &models.User{
		WorkspaceID:  workspace.ID,
		Email:        email,
		Name:         data.Name,
		PasswordHash: hash,
	}
	if err := s.user.Create(s.ctx, user); err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	s.users[email] = user
	return true, nil
}

func (s *seed) owner(workspaceName, ownerEmail string) (*models.Workspace, *models.User, error) {
	workspace, ok := s.workspaces[workspaceName]
	if !ok {
		return nil, nil, fmt.Errorf("unknown workspace %q", workspaceName)
	}
	user, ok := s.users[strings.ToLower(ownerEmail)]
	if !ok || user.WorkspaceID != workspace.ID {
		return nil, nil, fmt.Errorf("unknown owner %q in workspace %q", ownerEmail, workspaceName)
	}
	return workspace, user, nil
}

// createRecord validates fixture fields with the same rules the API applies
func (s *seed) createRecord(kind models.EntityKind, data RecordData) (bool, error) {
	workspace, user, err := s.owner(data.Workspace, data.Owner)
	if err != nil {
		return false, err
	}
	if errs := validation.Validate(kind, data.Fields); len(errs) > 0 {
		return false, fmt.Errorf("invalid fields: %v", errs)
	}

	entity, _ := models.NewEntity(kind)
	name := strings.TrimSpace(data.Fields[models.FieldName])
	err = s.db.Where("workspace_id = ? AND name = ?", workspace.ID, name).First(entity).Error
	if err == nil {
		s.remember(data.Workspace, entity)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query record: %w", err)
	}

	entity, _ = models.NewEntity(kind)
	entity.Apply(data.Fields)
	entity.SetOwnership(workspace.ID, user.ID)
	if err := s.entities[kind].Create(s.ctx, entity); err != nil {
		return false, fmt.Errorf("failed to create record: %w", err)
	}
	s.remember(data.Workspace, entity)
	return true, nil
}

func (s *seed) remember(workspaceName string, entity models.Entity) {
	if s.records[workspaceName] == nil {
		s.records[workspaceName] = make(map[string]models.Entity)
	}
	s.records[workspaceName][entity.DisplayName()] = entity
}

func (s *seed) createList(data ListData) (bool, error) {
	workspace, user, err := s.owner(data.Workspace, data.Owner)
	if err != nil {
		return false, err
	}

	access := data.Access
	if access == "" {
		access = string(models.ListAccessPrivate)
	}
	fields := map[string]string{
		models.FieldName:   data.Name,
		models.FieldType:   data.Type,
		models.FieldAccess: access,
	}
	if errs := validation.Validate(models.KindList, fields); len(errs) > 0 {
		return false, fmt.Errorf("invalid fields: %v", errs)
	}

	var existing models.List
	err = s.db.Where("workspace_id = ? AND owner_id = ? AND name = ?", workspace.ID, user.ID, data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query list: %w", err)
	}

	list := &models.List{}
	list.Apply(fields)
	list.SetOwnership(workspace.ID, user.ID)
	list.MemberIDs = pq.StringArray{}
	list.Version = 1

	for _, memberName := range data.Members {
		entity, ok := s.records[data.Workspace][memberName]
		if !ok {
			log.Printf("Warning: list %q references unknown record %q", data.Name, memberName)
			continue
		}
		if entity.Kind() != list.Type {
			log.Printf("Warning: list %q holds %s records, skipping %s %q", data.Name, list.Type, entity.Kind(), memberName)
			continue
		}
		list.MemberIDs = list.WithMember(entity.GetID())
	}

	if err := s.lists.Create(s.ctx, list); err != nil {
		return false, fmt.Errorf("failed to create list: %w", err)
	}
	return true, nil
}
