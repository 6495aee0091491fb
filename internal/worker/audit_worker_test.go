package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/backoffice-service/internal/events"
	"github.com/spec-kit/backoffice-service/internal/service"
)

func TestStartAuditWorker(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	StartAuditWorker(service.NewAuditService(dispatcher, zap.New(core)))

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:      events.EventAttendanceRecorded,
		SubjectID: "rec-1",
	}))
	assert.Equal(t, 1, logs.FilterMessage(string(events.EventAttendanceRecorded)).Len())

	assert.NotPanics(t, func() { StartAuditWorker(nil) })
}
