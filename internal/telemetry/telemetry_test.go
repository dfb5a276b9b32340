package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.NotPanics(t, func() { Logger().Info("should be discarded") })
}

func TestSetLoggerInstallsGivenLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Logger().Info("hello", String("k", "v"))
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "hello", entries[0].Message)
	}
}

func TestNewReturnsLogger(t *testing.T) {
	log := New("aerosort-test")
	assert.NotNil(t, log)
}
