// Package wire provides dependency injection for the workdesk application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/workdesk/internal/adapters/cli"
	"github.com/example/workdesk/internal/adapters/sqlite"
	"github.com/example/workdesk/internal/app"
	"github.com/example/workdesk/internal/config"
	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/logging"
	"github.com/example/workdesk/internal/ports/primary"
)

// Options are set from the root command's persistent flags.
type Options struct {
	WorkDir string // where .workdesk/config.yaml and .env are looked up
	Store   string // overrides the configured store when non-empty
	Verbose bool   // mirror log lines to stderr
}

var (
	options Options

	cfg      *config.Config
	database *sql.DB
	logger   *logging.Logger

	clientService    primary.ClientService
	workTypeService  primary.WorkTypeService
	workerService    primary.WorkerService
	workOrderService primary.WorkOrderService
	boardService     primary.BoardService

	once    sync.Once
	initErr error
)

// Configure records options for the first initialization. Calls after
// services have been built have no effect.
func Configure(opts Options) {
	options = opts
}

// Init builds every service once and reports the first failure.
func Init() error {
	once.Do(initServices)
	return initErr
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Store returns the open database handle.
func Store() *sql.DB {
	once.Do(initServices)
	return database
}

// ClientService returns the singleton ClientService instance.
func ClientService() primary.ClientService {
	once.Do(initServices)
	return clientService
}

// WorkTypeService returns the singleton WorkTypeService instance.
func WorkTypeService() primary.WorkTypeService {
	once.Do(initServices)
	return workTypeService
}

// WorkerService returns the singleton WorkerService instance.
func WorkerService() primary.WorkerService {
	once.Do(initServices)
	return workerService
}

// WorkOrderService returns the singleton WorkOrderService instance.
func WorkOrderService() primary.WorkOrderService {
	once.Do(initServices)
	return workOrderService
}

// BoardService returns the singleton BoardService instance.
func BoardService() primary.BoardService {
	once.Do(initServices)
	return boardService
}

// Close releases the store and the log file.
func Close() error {
	dbErr := db.Close(database)
	logErr := logger.Close()
	if dbErr != nil {
		return dbErr
	}
	return logErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	initErr = buildServices()
}

func buildServices() error {
	workDir := options.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = wd
	}

	loaded, err := config.Load(workDir)
	if err != nil {
		return err
	}
	if options.Store != "" {
		loaded.Store = options.Store
	}
	cfg = loaded

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return err
	}
	logger, err = logging.New(dataDir, cfg.LogLevel, options.Verbose)
	if err != nil {
		return err
	}

	storePath, err := cfg.StorePath()
	if err != nil {
		return err
	}
	database, err = db.Open(storePath)
	if err != nil {
		return err
	}
	logger.Debug("store opened", "store", cfg.Store, "path", storePath)

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	clientRepo := sqlite.NewClientRepository(database)
	workTypeRepo := sqlite.NewWorkTypeRepository(database)
	workerRepo := sqlite.NewWorkerRepository(database)
	workOrderRepo := sqlite.NewWorkOrderRepository(database)

	ctx := context.Background()
	if err := clientRepo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := workTypeRepo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := workerRepo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := workOrderRepo.EnsureSchema(ctx); err != nil {
		return err
	}

	// Create services (primary ports implementation)
	l := logger.Logger
	clientService = app.NewClientService(clientRepo, l)
	workTypeService = app.NewWorkTypeService(workTypeRepo, l)
	workerService = app.NewWorkerService(workerRepo, l)
	workOrderService = app.NewWorkOrderService(workOrderRepo, workTypeRepo, workerRepo, clientRepo, cfg.DefaultClientID, l)
	boardService = app.NewBoardService(workOrderRepo, workerRepo, l)
	return nil
}

// WorkOrderAdapter returns a new WorkOrderAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func WorkOrderAdapter() *cliadapter.WorkOrderAdapter {
	return WorkOrderAdapterWithOutput(os.Stdout)
}

// WorkOrderAdapterWithOutput returns a new WorkOrderAdapter writing to the given output.
func WorkOrderAdapterWithOutput(out io.Writer) *cliadapter.WorkOrderAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkOrderAdapter(workOrderService, workerService, out)
}

// BoardAdapter returns a new BoardAdapter writing to stdout.
func BoardAdapter() *cliadapter.BoardAdapter {
	return BoardAdapterWithOutput(os.Stdout)
}

// BoardAdapterWithOutput returns a new BoardAdapter writing to the given output.
func BoardAdapterWithOutput(out io.Writer) *cliadapter.BoardAdapter {
	once.Do(initServices)
	return cliadapter.NewBoardAdapter(boardService, out)
}

// ClientAdapter returns a new ClientAdapter writing to stdout.
func ClientAdapter() *cliadapter.ClientAdapter {
	once.Do(initServices)
	return cliadapter.NewClientAdapter(clientService, os.Stdout)
}

// WorkTypeAdapter returns a new WorkTypeAdapter writing to stdout.
func WorkTypeAdapter() *cliadapter.WorkTypeAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkTypeAdapter(workTypeService, os.Stdout)
}

// WorkerAdapter returns a new WorkerAdapter writing to stdout.
func WorkerAdapter() *cliadapter.WorkerAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkerAdapter(workerService, os.Stdout)
}
