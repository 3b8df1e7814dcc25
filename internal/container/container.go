package container

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/fitlife/fitlife-api/config"
	"github.com/fitlife/fitlife-api/internal/infrastructure/jwtauth"
	"github.com/fitlife/fitlife-api/internal/infrastructure/postgres"
	"github.com/fitlife/fitlife-api/pkg/helpers"
)

// Container holds shared infrastructure handles. It is built once in main
// and passed down explicitly instead of living in package globals.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	PG     *pgxpool.Pool
	Redis  *redis.Client
	Tokens *jwtauth.TokenService
	Pub    *helpers.RabbitPublisher
	ES     *elasticsearch.Client
}

// New wires the mandatory infrastructure. RabbitMQ and Elasticsearch are
// optional: a failure there is logged and the handle left nil, so the API
// keeps serving without the side channels.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		return nil, err
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable, rate limiting will fail open")
	}

	pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
	if err != nil {
		logger.WithError(err).Warn("rabbitmq unavailable, email jobs disabled")
		pub = nil
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch unavailable, user search disabled")
		es = nil
	}

	return &Container{
		Cfg:    cfg,
		Logger: logger,
		PG:     pool,
		Redis:  rdb,
		Tokens: jwtauth.NewTokenService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL),
		Pub:    pub,
		ES:     es,
	}, nil
}

// Close releases the container's connections.
func (c *Container) Close() {
	if c.Pub != nil {
		c.Pub.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.PG != nil {
		c.PG.Close()
	}
}
