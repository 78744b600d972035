package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	middleware "github.com/nimeshabuddhika/churn-prediction-api/pkg/middlewares"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg/mlmodel"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/configs"
	_ "github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/docs"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/handlers"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App is a fully wired churn-api process.
type App struct {
	Server *http.Server
	Logger *zap.Logger

	cfg     *configs.Config
	cleanup func()
}

// NewApp loads configuration and the model artifact, then builds the HTTP server.
// A model that cannot be loaded is an error; the service never starts without one.
func NewApp(logger *zap.Logger) (*App, error) {
	cfg, err := configs.Load(logger)
	if err != nil {
		return nil, err
	}

	logger, closeLog := pkg.WithRotatingFile(logger, pkg.LogFileConfig{
		Path:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})

	model, err := LoadModel(logger, cfg.ModelPath)
	if err != nil {
		closeLog()
		return nil, err
	}

	r := NewRouter(logger, cfg, model)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server:  srv,
		Logger:  logger,
		cfg:     cfg,
		cleanup: closeLog,
	}, nil
}

// LoadModel reads the artifact at path and checks its feature order against the request columns.
func LoadModel(logger *zap.Logger, path string) (*mlmodel.GradientBoosting, error) {
	model, err := mlmodel.Load(path)
	if err != nil {
		return nil, pkg.NewAppError(pkg.ErrModelArtifactCode, "failed to load model from "+path, err)
	}
	info := model.Info()
	features := make([]string, 0, len(info.Features))
	for _, f := range info.Features {
		features = append(features, f.Name)
	}
	if !slices.Equal(features, services.Columns) {
		// requests will fail assembly and be answered with the default result
		logger.Warn("model feature order differs from request columns",
			zap.Strings("model", features),
			zap.Strings("columns", services.Columns),
		)
	}
	logger.Info("model loaded",
		zap.String("path", path),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.Int("trees", info.Trees),
	)
	return model, nil
}

// NewRouter builds the Gin engine serving the prediction API.
func NewRouter(logger *zap.Logger, cfg *configs.Config, model mlmodel.Classifier) *gin.Engine {
	pkg.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CorsAllowOrigins))
	r.Use(middleware.TraceID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	if cfg.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	baseHandler := handlers.NewBaseHandler(logger, model.Info())
	predictionService := services.NewPredictionService(logger, model)
	predictionHandler := handlers.NewPredictionHandler(logger, predictionService)

	predictionHandler.RegisterRoutes(r.Group("/predict"))
	baseHandler.RegisterRoutes(r)
	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests within the shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("churn API started", zap.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close releases resources held by the app. Call it after the final logger Sync.
func (a *App) Close() {
	if a.cleanup != nil {
		a.cleanup()
	}
}
