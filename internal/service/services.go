package service

import (
	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
)

type Services struct {
	AuthService     AuthService
	GroupService    GroupService
	RecordService   RecordService
	QuestionService QuestionService
	MemoryService   MemoryService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	groupService := NewGroupService(storages.GroupRegistry, storages.AccountRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.AccountRepository, storages.SessionRepository, cfg, logger),
		GroupService:    groupService,
		RecordService:   NewRecordService(storages.RecordRepository, groupService, logger),
		QuestionService: NewQuestionService(storages.QuestionRepository, logger),
		MemoryService:   NewMemoryService(storages.MemoryRepository, storages.DecorationRepository, logger),
	}
}
