package worker

import (
	"github.com/spec-kit/backoffice-service/internal/service"
)

// StartAuditWorker subscribes the audit trail to domain events.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
