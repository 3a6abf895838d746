package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	data := []byte(`{
		"database_path": "/tmp/test.db",
		"sweep_interval": "90s",
		"allow_delete": false,
		"coordinates": "6.52,3.37",
		"fallback_email": "other@example.com"
	}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))

	assert.Equal(t, "/tmp/test.db", jc.DatabasePath)
	assert.Equal(t, 90*time.Second, jc.SweepInterval.Duration)
	require.NotNil(t, jc.AllowDelete)
	assert.False(t, *jc.AllowDelete)
	assert.Equal(t, "6.52,3.37", jc.Coordinates)
	assert.Equal(t, "other@example.com", jc.FallbackEmail)
}

func TestJsonConfig_AbsentFieldsStayZero(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{}`), &jc))

	assert.Empty(t, jc.DatabasePath)
	assert.Zero(t, jc.SweepInterval.Duration)
	assert.Nil(t, jc.AllowDelete)
}
