package main

import (
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tendant/simple-blog/pkg/simpleblog/config"
)

// Config is the environment-backed configuration of the blog server.
type Config struct {
	Port        string `env:"PORT" env-default:"3000"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// SiteDir is the static page shell; uploads default to a directory
	// inside it so the page can load them without extra routing.
	SiteDir   string `env:"SITE_DIR" env-default:"./web"`
	PostsPath string `env:"POSTS_PATH" env-default:"./data/posts.json"`

	StoreType     string `env:"STORE_TYPE" env-default:"json"`
	UploadBackend string `env:"UPLOAD_BACKEND" env-default:"fs"`
	UploadDir     string `env:"UPLOAD_DIR" env-default:""`

	S3 S3Config
}

// S3Config holds credentials for the optional S3 upload backend.
type S3Config struct {
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	Bucket          string `env:"AWS_S3_BUCKET" env-default:""`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
}

// loadServerConfig reads the process environment and produces a validated
// library configuration.
func loadServerConfig() (*config.ServerConfig, Config, error) {
	var env Config
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, env, err
	}

	uploadDir := env.UploadDir
	if uploadDir == "" {
		uploadDir = filepath.Join(env.SiteDir, "assets", "uploads")
	}

	cfg := config.Default()
	cfg.Port = env.Port
	cfg.Environment = env.Environment
	cfg.StoreType = env.StoreType
	cfg.PostsPath = env.PostsPath
	cfg.UploadBackend = env.UploadBackend
	cfg.UploadDir = uploadDir
	cfg.S3 = config.S3Config{
		Region:          env.S3.Region,
		Bucket:          env.S3.Bucket,
		AccessKeyID:     env.S3.AccessKeyID,
		SecretAccessKey: env.S3.SecretAccessKey,
		Endpoint:        env.S3.Endpoint,
		UsePathStyle:    env.S3.UsePathStyle,
	}

	if err := cfg.Validate(); err != nil {
		return nil, env, err
	}

	return &cfg, env, nil
}
