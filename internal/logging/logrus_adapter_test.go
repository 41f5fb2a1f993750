package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	assert.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	assert.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, adapter.logger.GetLevel())
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	logger := NewLogrusAdapter("bogus", "text")
	adapter := logger.(*LogrusAdapter)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestAdapterWritesFields(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	logger.Info("product matched",
		Field{Key: FieldCompany, Value: "הראל"},
		Field{Key: FieldScore, Value: 0.9})

	out := buf.String()
	assert.Contains(t, out, "product matched")
	assert.Contains(t, out, "הראל")
	assert.Contains(t, out, FieldCompany)
}

func TestWithErrorAndWithField(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	logger.WithError(errors.New("boom")).WithField("attempt", 2).Warn("retrying")

	out := buf.String()
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "attempt")
	assert.Contains(t, out, "retrying")
}

func TestWithFieldsReturnsNewLogger(t *testing.T) {
	logger := NewLogrusAdapter("info", "text")
	derived := logger.WithFields(Field{Key: "k", Value: "v"})
	assert.NotNil(t, derived)
	assert.NotSame(t, logger, derived)
}

func TestNewLogrusAdapterFromNil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	assert.NotNil(t, logger)
}
