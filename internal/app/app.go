package app

import (
	"context"

	"go-hris-console/internal/audit"
	"go-hris-console/internal/bootstrap"
	"go-hris-console/internal/config"
	"go-hris-console/internal/messaging/kafka"
	"go-hris-console/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the optional backing services. Each one is nil when not
// configured and the console falls back to an in-process replacement.
type Infra struct {
	Redis       *redis.Client
	KafkaWriter *kafkago.Writer
	AuditDB     *gorm.DB

	Audit     audit.Logger
	Publisher kafka.Publisher
}

// ShutdownHooks closes whatever connectInfra opened.
func (i *Infra) ShutdownHooks() []bootstrap.ShutdownFunc {
	var hooks []bootstrap.ShutdownFunc
	if i.KafkaWriter != nil {
		hooks = append(hooks, func(context.Context) error { return i.KafkaWriter.Close() })
	}
	if i.Redis != nil {
		hooks = append(hooks, func(context.Context) error { return i.Redis.Close() })
	}
	if i.AuditDB != nil {
		hooks = append(hooks, func(context.Context) error {
			sqlDB, err := i.AuditDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
	}
	return hooks
}

func connectInfra(cfg config.Config) (*Infra, error) {
	log := zap.L().Named("app")
	infra := &Infra{
		Audit:     audit.NewStdoutLogger(),
		Publisher: kafka.NoopPublisher{},
	}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		infra.Redis = rdb
	} else {
		log.Warn("REDIS_ADDR not set, console state is kept in memory")
	}

	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
		if err != nil {
			return nil, err
		}
		infra.KafkaWriter = writer
		infra.Publisher = kafka.NewPublisher(writer)
	} else {
		log.Info("KAFKA_BROKER not set, request events are not published")
	}

	if cfg.AuditDB != nil {
		db, err := connection.ConnectGORMWithRetry(*cfg.AuditDB, 5)
		if err != nil {
			return nil, err
		}
		gormAudit := audit.NewGormLogger(db)
		if err := gormAudit.Migrate(); err != nil {
			return nil, err
		}
		infra.AuditDB = db
		infra.Audit = gormAudit
	}

	return infra, nil
}

// BuildApp connects the backing services and mounts every module on
// router.
func BuildApp(router *gin.Engine, cfg config.Config) (*Infra, error) {
	infra, err := connectInfra(cfg)
	if err != nil {
		return nil, err
	}
	if err := registerModules(router, cfg, infra); err != nil {
		return nil, err
	}
	return infra, nil
}
