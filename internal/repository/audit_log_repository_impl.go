package repository

import (
	"context"
	"sync"

	"go-clinic-registry/internal/domain/entity"
	domainRepo "go-clinic-registry/internal/domain/repository"
)

type auditLogRepository struct {
	mu   sync.RWMutex
	logs []entity.AuditLog
}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

// Create assigns the next sequential ID and appends the entry.
func (r *auditLogRepository) Create(_ context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = int64(len(r.logs)) + 1
	r.logs = append(r.logs, *log)
	return nil
}

func (r *auditLogRepository) FindAll(_ context.Context) ([]entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.AuditLog{}, r.logs...), nil
}

func (r *auditLogRepository) FindByID(_ context.Context, id int64) (*entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 1 || id > int64(len(r.logs)) {
		return nil, nil
	}
	log := r.logs[id-1]
	return &log, nil
}
