package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digitalmetrics_backend/pkg/config"
)

func TestInitDrivesCDNAndKeyMapping(t *testing.T) {
	prev := settings
	t.Cleanup(func() { settings = prev })

	Init(config.StorageConfig{
		Bucket:  "test-assets",
		CDNBase: "https://assets.example.com/",
	})

	assert.Equal(t, "https://assets.example.com", cdnBase(), "trailing slash is trimmed")
	assert.Equal(t, "feedback/jane/1-x.jpg",
		getObjectKeyFromURL("https://assets.example.com/feedback/jane/1-x.jpg"))
	assert.Equal(t, "test-assets", conf().Bucket)
}

func TestConfFallsBackToEnvironmentDefaults(t *testing.T) {
	prev := settings
	t.Cleanup(func() { settings = prev })

	t.Setenv("R2_BUCKET_NAME", "")
	t.Setenv("CDN_BASE_URL", "")

	settings = nil
	assert.Equal(t, "digitalmetrics-assets", conf().Bucket)
	assert.Equal(t, "https://cdn.digitalmetrics.com", cdnBase())
}
