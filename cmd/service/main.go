package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messaging-service/internal/client/groups"
	"github.com/s21platform/messaging-service/internal/client/users"
	"github.com/s21platform/messaging-service/internal/config"
	"github.com/s21platform/messaging-service/internal/gateway"
	"github.com/s21platform/messaging-service/internal/infra"
	"github.com/s21platform/messaging-service/internal/pkg/jwt"
	"github.com/s21platform/messaging-service/internal/pkg/tx"
	"github.com/s21platform/messaging-service/internal/pkg/validator"
	db "github.com/s21platform/messaging-service/internal/repository/postgres"
	"github.com/s21platform/messaging-service/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	userClient := users.New(cfg)
	defer userClient.Close()

	groupClient := groups.New(cfg)
	defer groupClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Auth.JWTSecret)

	// no handle resolver is deployed yet; mentions persist unresolved
	wsGateway := gateway.New(dbRepo, jwtGenerator, userClient, groupClient, nil, logger)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.LoggerGRPC(logger),
			tx.TxMiddlewareGRPC(dbRepo),
		),
	)
	grpc_health_v1.RegisterHealthServer(grpcServer, health.NewServer())

	handler := rest.New(dbRepo, userClient, groupClient, wsGateway, vldtr, nil)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	// the gateway runs its own authenticate handshake over the socket
	router.Get("/ws", wsGateway.HandleWS)

	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.AuthInterceptorHTTP(next, jwtGenerator)
		})
		r.Use(func(next http.Handler) http.Handler {
			return tx.TxMiddlewareHTTP(dbRepo)(next)
		})

		handler.AttachRoutes(r)
	})

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
