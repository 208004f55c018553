package service

import (
	"time"

	"github.com/masrouf-app/masrouf/internal/adapter"
	"github.com/masrouf-app/masrouf/internal/logger"
	"github.com/masrouf-app/masrouf/internal/store"
)

type Services struct {
	TrackerService TrackerService
	SyncService    SyncService
	SyncJob        SyncJob
}

type Deps struct {
	Records     store.RecordStore
	Checkpoints store.CheckpointStore
	State       store.SyncStateRepository
	Backend     adapter.SheetsBackend
	SyncOptions SyncOptions
	Debounce    time.Duration
	Logger      *logger.Logger
}

func NewServices(deps Deps) *Services {
	syncSvc := NewSyncService(deps.Records, deps.Checkpoints, deps.State, deps.Backend, deps.SyncOptions, deps.Logger)
	job := NewSyncJob(syncSvc, deps.Debounce, deps.Logger)
	trackerSvc := NewTrackerService(deps.Records, job.Trigger, deps.Logger)

	return &Services{
		TrackerService: trackerSvc,
		SyncService:    syncSvc,
		SyncJob:        job,
	}
}
