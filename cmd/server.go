package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"nextup/internal/config"
	"nextup/internal/core"
	"nextup/internal/db"
	"nextup/internal/http/handler"
	"nextup/internal/http/handler/middleware"
	"nextup/internal/http/payload"
	"nextup/internal/http/server"
	"nextup/internal/repository"
	"nextup/pkg/hash"
	"nextup/pkg/jwt"
	"nextup/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("nextup", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionString)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret), config.JWTAudience, config.TokenExpiry)

	// password hasher
	hasher := hash.NewHasher()

	// repositories
	userRepo := repository.NewUserRepository(dbConn)
	todoRepo := repository.NewTodoRepository(dbConn)

	if err := userRepo.Migrate(); err != nil {
		logger.Errorw("failed to migrate user tables", "error", err)
		return err
	}
	if err := todoRepo.Migrate(); err != nil {
		logger.Errorw("failed to migrate todo tables", "error", err)
		return err
	}

	// core service
	nextUp := core.NewNextUp(
		logger,
		userRepo,
		todoRepo,
		jwtService,
		hasher,
		config.TokenPrefix)

	// handler
	todoHlr := handler.NewTodoHandler(
		logger,
		payload.Decoder{},
		nextUp)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.RegisterUser, todoHlr.HandleRegister)
	mux.HandleFunc(handler.LoginUser, todoHlr.HandleLogin)
	mux.HandleFunc(handler.GetCurrentUser, todoHlr.HandleGetCurrentUser)
	mux.HandleFunc(handler.GetAllTodos, todoHlr.HandleGetAllTodos)
	mux.HandleFunc(handler.GetMyTodos, todoHlr.HandleGetMyTodos)
	mux.HandleFunc(handler.CreateTodo, todoHlr.HandleCreateTodo)
	mux.HandleFunc(handler.GetTodo, todoHlr.HandleGetTodo)
	mux.HandleFunc(handler.UpdateTodo, todoHlr.HandleUpdateTodo)
	mux.HandleFunc(handler.DeleteTodo, todoHlr.HandleDeleteTodo)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
