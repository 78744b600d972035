package configs

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg/utils"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds application configuration for churn-api.
type Config struct {
	Port             string        `mapstructure:"PORT" validate:"required,numeric"`
	ModelPath        string        `mapstructure:"MODEL_PATH" validate:"required"`
	ReadTimeout      time.Duration `mapstructure:"READ_TIMEOUT" validate:"required"`
	WriteTimeout     time.Duration `mapstructure:"WRITE_TIMEOUT" validate:"required"`
	ShutdownTimeout  time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`
	CorsAllowOrigins []string      `mapstructure:"CORS_ALLOW_ORIGINS" validate:"min=1"`
	EnableSwagger    bool          `mapstructure:"ENABLE_SWAGGER"`
	LogFile          string        `mapstructure:"LOG_FILE"`
	LogMaxSizeMB     int           `mapstructure:"LOG_MAX_SIZE_MB" validate:"min=1"`
	LogMaxBackups    int           `mapstructure:"LOG_MAX_BACKUPS" validate:"min=0"`
	LogMaxAgeDays    int           `mapstructure:"LOG_MAX_AGE_DAYS" validate:"min=0"`
}

func Load(logger *zap.Logger) (*Config, error) {
	viper.SetEnvPrefix("app") // Prefix for env vars
	viper.AutomaticEnv()

	// Default values
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("MODEL_PATH", "./services/churn-api/ml_models/best_gb_model.json")
	viper.SetDefault("READ_TIMEOUT", "10s")
	viper.SetDefault("WRITE_TIMEOUT", "10s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("ENABLE_SWAGGER", gin.ReleaseMode != gin.Mode())
	viper.SetDefault("LOG_MAX_SIZE_MB", "100")
	viper.SetDefault("LOG_MAX_BACKUPS", "5")
	viper.SetDefault("LOG_MAX_AGE_DAYS", "28")

	// Optional: Read from config.yaml if exists
	if gin.ReleaseMode == gin.Mode() {
		viper.SetConfigName("config.prod")
	} else if gin.TestMode == gin.Mode() {
		logger.Warn("running in test mode")
		viper.SetConfigName("config.test")
	} else {
		logger.Warn("running in development mode")
		viper.SetConfigName("config.dev")
	}
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./services/churn-api/configs")
	_ = viper.ReadInConfig() // Ignore if no file

	var cfg Config
	if err := utils.ParseStructEnv(&cfg); err != nil {
		return nil, err
	}
	// Validate after unmarshal
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, utils.FormatConfigErrors(logger, err, cfg)
	}
	return &cfg, nil
}
