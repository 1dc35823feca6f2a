package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio-io/portfolio-backend/config"
	"github.com/devfolio-io/portfolio-backend/internal/bootstrap"
	"github.com/devfolio-io/portfolio-backend/internal/projects"
	"github.com/devfolio-io/portfolio-backend/internal/uploads"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	// A failed connection is logged, not fatal: the service keeps serving and
	// each request fails individually until the database comes back.
	var db *mongo.Client
	if client, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{URI: cfg.Mongo.URI}); err != nil {
		log.Printf("database unavailable: %v", err)
	} else {
		db = client
		defer func() { _ = db.Disconnect(context.Background()) }()
	}

	var blobs uploads.BlobStore
	if cfg.S3Enabled() {
		store, err := uploads.NewObjectStore(ctx, uploads.ObjectStoreOptions{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
		})
		if err != nil {
			log.Fatalf("object storage: %v", err)
		}
		blobs = store
		log.Printf("uploads stored in bucket %s", cfg.S3.Bucket)
	} else {
		blobs = uploads.NewDiskStore(cfg.Uploads.Dir)

		janitor := uploads.NewJanitor(cfg.Uploads.Dir, 0)
		if err := janitor.Start(); err != nil {
			log.Printf("janitor disabled: %v", err)
		} else {
			defer janitor.Stop()
		}
	}

	var cache *projects.ListCache
	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		cache = projects.NewListCache(rdb, cfg.Cache.TTL)
		log.Printf("project list cache enabled (%s, ttl %s)", cfg.Cache.RedisAddr, cfg.Cache.TTL)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		DB:             db,
		DBName:         cfg.Mongo.Database,
		Blobs:          blobs,
		Cache:          cache,
		PublicBaseURL:  cfg.Server.PublicBaseURL,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
