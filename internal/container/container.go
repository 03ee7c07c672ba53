// Package container builds the process-lifetime components (store pool,
// optional cloud clients) and the adapters the services are wired with.
package container

import (
	"context"

	gcs "cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/config"
	repo "github.com/saffco/skincare-backend/internal/domain/repository"
	"github.com/saffco/skincare-backend/internal/domain/service"
	pginfra "github.com/saffco/skincare-backend/internal/infrastructure/postgres"
	"github.com/saffco/skincare-backend/internal/infrastructure/storage"
	"github.com/saffco/skincare-backend/pkg/helpers"
)

type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger

	Pool      *pgxpool.Pool
	Redis     *redis.Client
	GCS       *gcs.Client
	ES        *elasticsearch.Client
	Publisher *helpers.RabbitPublisher

	Users     repo.UserRepository
	Articles  repo.ArticleRepository
	Products  repo.ProductRepository
	Favorites repo.FavoriteRepository

	Hasher   service.PasswordHasher
	Stager   service.FileStager
	Uploads  *storage.LocalStager
	Models   service.BlobSource
	Notifier service.Notifier    // nil when publishing is disabled
	Search   service.SearchIndex // nil when Elasticsearch is not configured
}

// New connects to Postgres and to every optional backend the config enables.
// Postgres and the selected upload/recommender backends are required; search
// and notifications degrade to disabled with a warning.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Cfg: cfg, Logger: logger, Hasher: helpers.NewBcryptHasher()}

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		return nil, err
	}
	c.Pool = pool
	c.Users = pginfra.NewUserRepository(pool)
	c.Articles = pginfra.NewArticleRepository(pool)
	c.Products = pginfra.NewProductRepository(pool)
	c.Favorites = pginfra.NewFavoriteRepository(pool)

	if cfg.RedisAddr != "" {
		c.Redis = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			c.Close()
			return nil, errors.Wrapf(err, "ping redis %s", cfg.RedisAddr)
		}
	}

	if err := c.initUploads(ctx); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.initModels(); err != nil {
		c.Close()
		return nil, err
	}
	c.initSearch()
	c.initNotifier()
	return c, nil
}

func (c *Container) initUploads(ctx context.Context) error {
	local, err := storage.NewLocalStager(c.Cfg.UploadDir)
	if err != nil {
		return err
	}
	c.Uploads = local
	c.Stager = local

	if c.Cfg.UploadBackend != "gcs" {
		return nil
	}
	if c.Cfg.GCSBucket == "" {
		return errors.New("UPLOAD_BACKEND=gcs requires GCS_BUCKET")
	}
	client, err := helpers.NewGCSClient(ctx, c.Cfg.GCSCredentials)
	if err != nil {
		return errors.Wrap(err, "init gcs client")
	}
	c.GCS = client
	c.Stager = storage.NewGCSStager(client, c.Cfg.GCSBucket, c.Cfg.GCSAvatarPrefix)
	return nil
}

func (c *Container) initModels() error {
	switch c.Cfg.RecommenderSource {
	case "redis":
		if c.Redis == nil {
			return errors.New("RECOMMENDER_SOURCE=redis requires REDIS_ADDR")
		}
		c.Models = helpers.NewRedisBlobSource(c.Redis, c.Cfg.RecommenderRedisKey)
	default:
		c.Models = storage.NewFileBlobSource(c.Cfg.RecommenderDataPath)
	}
	return nil
}

func (c *Container) initSearch() {
	addrs := c.Cfg.ESAddrs()
	if len(addrs) == 0 {
		return
	}
	es, err := helpers.NewESClient(addrs, c.Cfg.ElasticsearchUser, c.Cfg.ElasticsearchPass)
	if err != nil {
		helpers.LogWarn(c.Logger, "elasticsearch disabled", err, logrus.Fields{"addrs": addrs})
		return
	}
	c.ES = es
	c.Search = helpers.NewESIndex(es)
}

func (c *Container) initNotifier() {
	if !c.Cfg.MailSendEnabled || c.Cfg.RabbitMQURL == "" {
		return
	}
	pub, err := helpers.NewRabbitPublisher(c.Cfg.RabbitMQURL, c.Cfg.RabbitMQNotifyQueue)
	if err != nil {
		helpers.LogWarn(c.Logger, "notifications disabled", err, logrus.Fields{"queue": c.Cfg.RabbitMQNotifyQueue})
		return
	}
	c.Publisher = pub
	c.Notifier = pub
}

// Close releases every client that was opened. It is safe on a partially built container.
func (c *Container) Close() {
	if c.Publisher != nil {
		c.Publisher.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
