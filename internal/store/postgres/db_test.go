package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ConnString(t *testing.T) {
	cfg := Config{
		Host:         "db.internal",
		Port:         "5433",
		User:         "dormledger",
		Password:     "secret",
		Database:     "dormledger",
		SSLMode:      "require",
		MaxOpenConns: 25,
		MaxIdleConns: 5,
	}

	got := cfg.connString()
	assert.Equal(t, "host=db.internal port=5433 user=dormledger password=secret dbname=dormledger sslmode=require pool_max_conns=25 pool_min_conns=5", got)
}

func TestInitialSchemaEmbedded(t *testing.T) {
	assert.True(t, strings.Contains(InitialSchema, "CREATE TABLE"))
	assert.True(t, strings.Contains(InitialSchema, "collections"))
}
