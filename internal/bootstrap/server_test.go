package bootstrap

import (
	"context"
	"net/http"
	"os"
	"syscall"
	"testing"

	"go-hris-console/internal/audit"

	"github.com/stretchr/testify/assert"
)

type recordingAudit struct {
	entries []audit.Entry
}

func (a *recordingAudit) Log(_ context.Context, e audit.Entry) {
	a.entries = append(a.entries, e)
}

func TestServe_ShutdownAuditsAndRunsHooks(t *testing.T) {
	auditLog := &recordingAudit{}
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	var ran []string
	serve(http.NotFoundHandler(), ServerConfig{Port: "0"}, auditLog, quit,
		func(context.Context) error { ran = append(ran, "redis"); return nil },
		func(context.Context) error { ran = append(ran, "kafka"); return nil },
	)

	assert.Equal(t, []string{"redis", "kafka"}, ran)
	if assert.Len(t, auditLog.entries, 1) {
		assert.Equal(t, audit.ActionServerShutdown, auditLog.entries[0].Action)
		assert.Equal(t, "terminated", auditLog.entries[0].Meta["signal"])
	}
}
