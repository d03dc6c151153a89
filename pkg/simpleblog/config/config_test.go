package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr string
	}{
		{
			name:    "missing port",
			mutate:  func(c *ServerConfig) { c.Port = "" },
			wantErr: "port is required",
		},
		{
			name:    "unknown store type",
			mutate:  func(c *ServerConfig) { c.StoreType = "postgres" },
			wantErr: "store_type must be",
		},
		{
			name: "json store without path",
			mutate: func(c *ServerConfig) {
				c.StoreType = "json"
				c.PostsPath = ""
			},
			wantErr: "posts path is required",
		},
		{
			name: "memory store needs no path",
			mutate: func(c *ServerConfig) {
				c.StoreType = "memory"
				c.PostsPath = ""
			},
		},
		{
			name: "fs backend without dir",
			mutate: func(c *ServerConfig) {
				c.UploadBackend = "fs"
				c.UploadDir = ""
			},
			wantErr: "upload dir is required",
		},
		{
			name:    "unknown upload backend",
			mutate:  func(c *ServerConfig) { c.UploadBackend = "ftp" },
			wantErr: "upload_backend must be",
		},
		{
			name: "s3 backend without bucket",
			mutate: func(c *ServerConfig) {
				c.UploadBackend = "s3"
			},
			wantErr: "s3 bucket is required",
		},
		{
			name: "s3 backend with bucket",
			mutate: func(c *ServerConfig) {
				c.UploadBackend = "s3"
				c.S3.Bucket = "blog-uploads"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuildServiceMemory(t *testing.T) {
	cfg := Default()
	cfg.StoreType = "memory"
	cfg.UploadBackend = "memory"

	svc, err := cfg.BuildService()
	require.NoError(t, err)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestBuildServiceJSONAndFS(t *testing.T) {
	tmp := t.TempDir()

	cfg := Default()
	cfg.PostsPath = filepath.Join(tmp, "posts.json")
	cfg.UploadDir = filepath.Join(tmp, "uploads")

	svc, err := cfg.BuildService()
	require.NoError(t, err)

	// The json store seeds an empty document on first use.
	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.FileExists(t, cfg.PostsPath)
}

func TestBuildServiceRejectsUnknownStore(t *testing.T) {
	cfg := Default()
	cfg.StoreType = "postgres"

	_, err := cfg.buildPostStore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store type")
}
