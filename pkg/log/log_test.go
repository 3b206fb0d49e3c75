package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsRelevantField(t *testing.T) {
	assert.True(t, isRelevantField("correlation_id"))
	assert.True(t, isRelevantField("customer_id"))
	assert.True(t, isRelevantField("prospect_id"))
	assert.True(t, isRelevantField("user_email"))
	assert.False(t, isRelevantField("remote_addr"))
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Configure("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	Configure("nível-inválido")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestDevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	filtered := L.WithFields(Fields{"remote_addr": "127.0.0.1"})
	assert.Same(t, L, filtered)

	kept := L.WithField("customer_id", "c1").(*logger)
	assert.Equal(t, "c1", kept.entry.Data["customer_id"])
}
