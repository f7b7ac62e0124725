// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/pomo-dev/pomo/internal/domain"
	"github.com/pomo-dev/pomo/internal/infra/config"
	"github.com/pomo-dev/pomo/internal/infra/identity"
	"github.com/pomo-dev/pomo/internal/infra/jsonstore"
	"github.com/pomo-dev/pomo/internal/infra/logging"
	"github.com/pomo-dev/pomo/internal/infra/sqlitestore"
	"github.com/pomo-dev/pomo/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Store    domain.Store
	Identity domain.IdentityResolver
	Clock    domain.Clock
	IDs      domain.IDGenerator
	Logger   domain.Logger

	Config *domain.Config
}

// New creates a new Container from the user configuration.
func New() (*Container, error) {
	appConfig, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	dataDir := appConfig.DataDir
	if dataDir == "" {
		dataDir = defaultDataDir()
	}

	var store domain.Store
	if appConfig.Store == domain.StoreSQLite {
		store = sqlitestore.New(filepath.Join(dataDir, "pomo.db"))
	} else {
		store = jsonstore.New(filepath.Join(dataDir, "pomo.json"))
	}

	return &Container{
		Store:    store,
		Identity: identity.NewResolver(appConfig.User),
		Clock:    domain.RealClock{},
		IDs:      domain.UUIDGenerator{},
		Logger:   logging.New(appConfig.Log.Level),
		Config:   appConfig,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, store domain.Store, resolver domain.IdentityResolver, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Container {
	return &Container{
		Store:    store,
		Identity: resolver,
		Clock:    clock,
		IDs:      ids,
		Logger:   logger,
		Config:   cfg,
	}
}

// defaultDataDir returns the default data directory.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pomo")
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.Store)
}

// CreateSessionUseCase returns a new CreateSession use case.
func (c *Container) CreateSessionUseCase() *usecase.CreateSession {
	return usecase.NewCreateSession(c.Store, c.IDs, c.Clock, c.Logger)
}

// ListSessionsUseCase returns a new ListSessions use case.
func (c *Container) ListSessionsUseCase() *usecase.ListSessions {
	return usecase.NewListSessions(c.Store)
}

// GetSessionUseCase returns a new GetSession use case.
func (c *Container) GetSessionUseCase() *usecase.GetSession {
	return usecase.NewGetSession(c.Store)
}

// EndSessionUseCase returns a new EndSession use case.
func (c *Container) EndSessionUseCase() *usecase.EndSession {
	return usecase.NewEndSession(c.Store, c.Clock, c.Logger)
}

// SearchSessionsUseCase returns a new SearchSessions use case.
func (c *Container) SearchSessionsUseCase() *usecase.SearchSessions {
	return usecase.NewSearchSessions(c.Store)
}

// ExportSessionUseCase returns a new ExportSession use case.
func (c *Container) ExportSessionUseCase() *usecase.ExportSession {
	return usecase.NewExportSession(c.Store, c.Store, c.Store, c.Store)
}

// StartPomodoroUseCase returns a new StartPomodoro use case.
func (c *Container) StartPomodoroUseCase() *usecase.StartPomodoro {
	return usecase.NewStartPomodoro(c.Store, c.Store, c.Store, c.IDs, c.Clock, c.Logger)
}

// AdvanceToBreakUseCase returns a new AdvanceToBreak use case.
func (c *Container) AdvanceToBreakUseCase() *usecase.AdvanceToBreak {
	return usecase.NewAdvanceToBreak(c.Store, c.Clock, c.Logger)
}

// CompletePomodoroUseCase returns a new CompletePomodoro use case.
func (c *Container) CompletePomodoroUseCase() *usecase.CompletePomodoro {
	return usecase.NewCompletePomodoro(c.Store, c.Clock, c.Logger)
}

// ListPomodorosUseCase returns a new ListPomodoros use case.
func (c *Container) ListPomodorosUseCase() *usecase.ListPomodoros {
	return usecase.NewListPomodoros(c.Store)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Store, c.IDs, c.Clock, c.Logger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Store, c.Store, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// SetReflectionUseCase returns a new SetReflection use case.
func (c *Container) SetReflectionUseCase() *usecase.SetReflection {
	return usecase.NewSetReflection(c.Store, c.Store, c.IDs, c.Logger)
}

// GetReflectionUseCase returns a new GetReflection use case.
func (c *Container) GetReflectionUseCase() *usecase.GetReflection {
	return usecase.NewGetReflection(c.Store)
}

// CreatePresetUseCase returns a new CreatePreset use case.
func (c *Container) CreatePresetUseCase() *usecase.CreatePreset {
	return usecase.NewCreatePreset(c.Store, c.IDs, c.Clock, c.Logger)
}

// ListPresetsUseCase returns a new ListPresets use case.
func (c *Container) ListPresetsUseCase() *usecase.ListPresets {
	return usecase.NewListPresets(c.Store)
}

// SearchPresetsUseCase returns a new SearchPresets use case.
func (c *Container) SearchPresetsUseCase() *usecase.SearchPresets {
	return usecase.NewSearchPresets(c.Store)
}
