package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katatrina/b2c-BE/api"
	db "github.com/katatrina/b2c-BE/internal/db/sqlc"
	"github.com/katatrina/b2c-BE/internal/event"
	"github.com/katatrina/b2c-BE/internal/notification"
	ordertracking "github.com/katatrina/b2c-BE/internal/order_tracking"
	"github.com/katatrina/b2c-BE/internal/util"
	"github.com/katatrina/b2c-BE/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	
	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}
	
	log.Info().Msg("configurations loaded successfully ✅")
	
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	
	// Create connection pool
	connPool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}
	defer connPool.Close()
	
	pingErr := connPool.Ping(ctx)
	if pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")
	
	store := db.NewStore(connPool)
	
	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})
	defer redisDb.Close()
	
	registry := event.NewRegistry()
	relay := notification.NewRedisRelay(redisDb, config.NotificationRelayChannel)
	broker := notification.NewBroker(store, registry, relay)
	pipeline := notification.NewPipeline(store, broker)
	
	// Thông báo từ mọi instance đi qua Redis rồi mới đẩy tới các kết nối SSE cục bộ
	err = relay.Start(ctx, func(n db.Notification) {
		broker.Deliver(n)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start notification relay 😣")
	}
	
	var dispatcher notification.Dispatcher = pipeline
	var taskInspector worker.TaskInspector
	
	if config.AsyncDispatch {
		redisOpt := asynq.RedisClientOpt{
			Addr: config.RedisServerAddress,
		}
		
		distributor := worker.NewTaskDistributor(redisOpt)
		defer distributor.Close()
		
		processor := worker.NewRedisTaskProcessor(redisOpt, pipeline)
		if err = processor.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start task processor 😣")
		}
		defer processor.Shutdown()
		log.Info().Msg("task processor started ✅")
		
		dispatcher = worker.NewAsyncDispatcher(distributor)
		taskInspector = worker.NewTaskInspector(redisOpt)
	}
	
	tracker, err := ordertracking.NewOrderTracker(store, broker, config.PickupReminderAfter, config.PickupReminderCheckInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create order tracker 😣")
	}
	if err = tracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start order tracker 😣")
	}
	log.Info().Msg("order tracker started ✅")
	
	server, err := api.NewServer(store, &config, registry, broker, dispatcher, taskInspector)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}
	
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return server.Start(groupCtx, config.HTTPServerAddress)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info().Msg("shutting down...")
		return tracker.Stop()
	})
	
	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error 😣")
	}
	
	log.Info().Msg("server stopped")
}
