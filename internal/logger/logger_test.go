package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/tj/assert"
)

func TestSetLevel(t *testing.T) {
	defer defaultLogger.SetLevel(logrus.InfoLevel)

	err := SetLevel("debug")
	assert.Nil(t, err)
	assert.Equal(t, logrus.DebugLevel, Logger().GetLevel())

	err = SetLevel("loud")
	assert.NotNil(t, err)
	assert.Equal(t, logrus.DebugLevel, Logger().GetLevel())
}

func TestWithFieldsWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	defaultLogger.SetOutput(&buf)
	defer defaultLogger.SetOutput(defaultOutput)

	WithFields(Fields{"request_id": "abc-123"}).Info("request served")

	var entry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &entry)
	assert.Nil(t, err)
	assert.Equal(t, "abc-123", entry["request_id"])
	assert.Equal(t, "request served", entry["msg"])
	assert.Equal(t, "info", entry["level"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	defaultLogger.SetOutput(&buf)
	defer defaultLogger.SetOutput(defaultOutput)

	ctx := ContextWithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))

	FromContext(ctx).Error("upstream failed")

	var entry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &entry)
	assert.Nil(t, err)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "error", entry["level"])
}
