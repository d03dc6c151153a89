// Package config assembles a simpleblog.Service from declarative server
// configuration, keeping backend selection out of the executables.
package config

import (
	"errors"
	"fmt"

	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/assets"
	jsonstore "github.com/tendant/simple-blog/pkg/simpleblog/store/jsondoc"
	memorystore "github.com/tendant/simple-blog/pkg/simpleblog/store/memory"
	fsstorage "github.com/tendant/simple-blog/pkg/simpleblog/storage/fs"
	memorystorage "github.com/tendant/simple-blog/pkg/simpleblog/storage/memory"
	s3storage "github.com/tendant/simple-blog/pkg/simpleblog/storage/s3"
)

// ServerConfig represents server configuration for the simple-blog service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Post store configuration
	StoreType string // "json", "memory"
	PostsPath string // JSON document location when StoreType is "json"

	// Upload storage configuration
	UploadBackend string // "fs", "memory", "s3"
	UploadDir     string // Upload directory when UploadBackend is "fs"
	UploadPrefix  string // Public relative path prefix for uploads

	// S3 options when UploadBackend is "s3"
	S3 S3Config
}

// S3Config represents S3 upload-backend configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	UsePathStyle    bool
}

// Default returns the configuration a fresh checkout runs with
func Default() ServerConfig {
	return ServerConfig{
		Port:          "3000",
		Environment:   "development",
		StoreType:     "json",
		PostsPath:     "./data/posts.json",
		UploadBackend: "fs",
		UploadDir:     "./web/assets/uploads",
		UploadPrefix:  assets.DefaultPublicPrefix,
	}
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.StoreType {
	case "json":
		if c.PostsPath == "" {
			return errors.New("posts path is required when using the json store")
		}
	case "memory":
	default:
		return fmt.Errorf("store_type must be 'json' or 'memory', got %q", c.StoreType)
	}

	switch c.UploadBackend {
	case "fs":
		if c.UploadDir == "" {
			return errors.New("upload dir is required when using the fs backend")
		}
	case "memory":
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("s3 bucket is required when using the s3 backend")
		}
	default:
		return fmt.Errorf("upload_backend must be 'fs', 'memory' or 's3', got %q", c.UploadBackend)
	}

	return nil
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService() (simpleblog.Service, error) {
	store, err := c.buildPostStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build post store: %w", err)
	}

	objects, err := c.buildObjectStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build upload storage: %w", err)
	}

	var managerOpts []assets.Option
	if c.UploadPrefix != "" {
		managerOpts = append(managerOpts, assets.WithPublicPrefix(c.UploadPrefix))
	}

	return simpleblog.New(
		simpleblog.WithPostStore(store),
		simpleblog.WithAssetManager(assets.NewManager(objects, managerOpts...)),
	)
}

func (c *ServerConfig) buildPostStore() (simpleblog.PostStore, error) {
	switch c.StoreType {
	case "json":
		return jsonstore.New(jsonstore.Config{
			Path:          c.PostsPath,
			CreateMissing: true,
		})
	case "memory":
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", c.StoreType)
	}
}

func (c *ServerConfig) buildObjectStore() (simpleblog.ObjectStore, error) {
	switch c.UploadBackend {
	case "fs":
		return fsstorage.New(fsstorage.Config{BaseDir: c.UploadDir})
	case "memory":
		return memorystorage.New(), nil
	case "s3":
		return s3storage.New(s3storage.Config{
			Region:          c.S3.Region,
			Bucket:          c.S3.Bucket,
			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
			Endpoint:        c.S3.Endpoint,
			UsePathStyle:    c.S3.UsePathStyle,
		})
	default:
		return nil, fmt.Errorf("unsupported upload backend: %s", c.UploadBackend)
	}
}
