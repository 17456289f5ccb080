package app

import (
	"context"
	"time"

	"crewcall/internal/config"
	"crewcall/internal/database"
	"crewcall/internal/database/migration"
	dbpostgres "crewcall/internal/database/postgres"
	"crewcall/internal/database/seeder"
	"crewcall/internal/events"
	"crewcall/internal/infrastructure/cache"
	"crewcall/internal/infrastructure/mail"
	"crewcall/internal/infrastructure/payment"
	"crewcall/internal/notify"
	"crewcall/internal/pkg/jwt"
	"crewcall/internal/repository"
	"crewcall/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const defaultEventTopic = "crewcall.events"

// Container wires infrastructure into the manager layer. Bootstrap mounts
// the HTTP surface on top of it.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB       database.DB
	Cache    *cache.Redis
	Producer *events.Producer
	Hub      *notify.Hub
	JWT      jwt.Service
	Payment  payment.Gateway

	AuthUC        usecase.AuthUsecase
	CompanyUC     usecase.CompanyUsecase
	JobUC         usecase.JobUsecase
	ApplicationUC usecase.ApplicationUsecase
	TalentUC      usecase.TalentUsecase
	SkillUC       usecase.SkillUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	db, err := connectWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	migDir := cfg.Database.MigrationsDir
	if migDir == "" {
		migDir = "migrations"
	}
	if err := (migration.Runner{Dir: migDir}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	seed := seeder.Runner{Seeders: []seeder.Seeder{seeder.SkillsSeeder{}}}
	if err := seed.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	var producer *events.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		topic := cfg.Kafka.Topic
		if topic == "" {
			topic = defaultEventTopic
		}
		producer = events.NewProducer(cfg.Kafka.Brokers, topic, logger)
	}

	hub := notify.NewHub(logger)
	go hub.Run()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	mailer := mail.NewClient(cfg.Mail, logger)
	gateway := payment.NewHTTPGateway(cfg.Payment, logger)

	userRepo := repository.NewPostgresUserRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Producer: producer,
		Hub:      hub,
		JWT:      jwtSvc,
		Payment:  gateway,

		AuthUC:        usecase.NewAuthUsecase(userRepo, jwtSvc, redisCache, mailer, hub, logger),
		CompanyUC:     usecase.NewCompanyUsecase(companyRepo, logger),
		JobUC:         usecase.NewJobUsecase(jobRepo, companyRepo, redisCache, producer, logger),
		ApplicationUC: usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo, producer, hub, logger),
		TalentUC:      usecase.NewTalentUsecase(profileRepo, logger),
		SkillUC:       usecase.NewSkillUsecase(skillRepo, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.Producer.Close()
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// connectWithRetry keeps trying the database during startup so the server
// survives the store coming up a few seconds after it.
func connectWithRetry(cfg config.DatabaseConfig, logger *zap.Logger) (database.DB, error) {
	var db database.DB

	op := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		db, err = dbpostgres.Connect(ctx, cfg)
		if err != nil {
			logger.Warn("database connect failed, retrying", zap.Error(err))
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return db, nil
}
