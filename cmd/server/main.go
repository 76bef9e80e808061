package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/ledgerdelivery"
	"github.com/go-petr/bank-ledger/internal/ledgerservice"
	"github.com/go-petr/bank-ledger/internal/levels"
	"github.com/go-petr/bank-ledger/internal/middleware"
	"github.com/go-petr/bank-ledger/internal/notifier"
	"github.com/go-petr/bank-ledger/internal/sessiondelivery"
	"github.com/go-petr/bank-ledger/internal/syncqueue"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
	"github.com/go-petr/bank-ledger/pkg/dbpkg"
	"github.com/go-petr/bank-ledger/pkg/tokenpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	dialect, err := accountrepo.DialectForDriver(config.DBDriver)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot resolve sql dialect")
	}

	policy, err := levels.Parse(config.Levels)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot parse level policy")
	}

	repo := accountrepo.NewRepoSQL(conn, dialect, policy)

	if err := repo.EnsureSchema(logger.WithContext(context.Background())); err != nil {
		logger.Fatal().Err(err).Msg("cannot create bank accounts table")
	}

	queue := syncqueue.NewQueue()

	scheduler := syncqueue.NewScheduler(queue, repo,
		config.SyncDelay, config.SyncPeriod, config.SyncDebug, logger)
	scheduler.Start()
	defer scheduler.Stop()

	publisher, closePublisher, err := newPublisher(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to notification broker")
	}
	defer closePublisher()

	service := ledgerservice.New(repo, queue, publisher, policy, config.Authoritative())

	server, err := createServer(service, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if err := server.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

// newPublisher selects the broadcast backend. An empty driver disables
// cross-node notifications entirely.
func newPublisher(config configpkg.Config, logger zerolog.Logger) (ledgerservice.Notifier, func(), error) {
	switch config.NotifierDriver {
	case "redis":
		p := notifier.NewRedisPublisher(config.RedisAddress, logger)
		return p, func() { _ = p.Close() }, nil
	case "rabbitmq":
		p, err := notifier.NewAMQPPublisher(config.AMQPAddress, logger)
		if err != nil {
			return nil, nil, err
		}

		return p, func() { _ = p.Close() }, nil
	case "":
		return nil, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unsupported notifier driver %q", config.NotifierDriver)
}

func createServer(service *ledgerservice.Service, logger zerolog.Logger, config configpkg.Config) (*gin.Engine, error) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, err
	}

	ledgerHandler := ledgerdelivery.NewHandler(service)
	sessionHandler := sessiondelivery.NewHandler(config, tokenMaker)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	server.POST("/sessions", sessionHandler.Login)

	server.POST("/accounts/:id/deposit", ledgerHandler.Deposit)
	server.POST("/accounts/:id/withdraw", ledgerHandler.Withdraw)
	server.GET("/accounts/:id", ledgerHandler.Get)
	server.GET("/accounts", ledgerHandler.List)

	adminRoutes := server.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	adminRoutes.PUT("/accounts/:id/balance", ledgerHandler.SetBalance)
	adminRoutes.DELETE("/accounts/:id", ledgerHandler.Delete)

	return server, nil
}
