package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Vision   VisionConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds configuration for the local extraction engine.
type OCRConfig struct {
	Tesseract     string
	Pdftotext     string
	Pdftoppm      string
	Pdfinfo       string
	Identify      string
	TesseractLang string
	TessdataDir   string
	DPI           int
	Timeout       time.Duration
}

// VisionConfig holds configuration for the teacher extraction backend.
type VisionConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// PipelineConfig holds thresholds and limits for the receipt pipeline.
// Every knob is overridable so deployments can tune them without a
// rebuild.
type PipelineConfig struct {
	// MinConfidence is the mean line confidence below which the quality
	// gate escalates to the teacher backend.
	MinConfidence float64
	// AcceptDPI: PDFs or images at or above this DPI are accepted from the
	// local engine outright.
	AcceptDPI int
	// FuzzyThreshold is the minimum similarity score (0..100) for a fuzzy
	// product match.
	FuzzyThreshold int
	// TotalTolerance is the allowed absolute difference between declared
	// total and the sum of parsed line totals, in currency units.
	TotalTolerance string
	// LineTolerance bounds |unit_price*quantity - line_total| per line.
	LineTolerance string
	// MinSamples is how many independent samples a correction pattern must
	// be mined from before it is promoted to active.
	MinSamples int
	// Workers caps how many receipts are processed concurrently.
	Workers int
	// OCRSlots and MatchSlots bound how many receipts may sit in the OCR
	// and matching stages simultaneously.
	OCRSlots   int64
	MatchSlots int64
	// StageTimeout bounds any single pipeline stage.
	StageTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Pdfinfo:       getEnv("PDFINFO_BIN", "pdfinfo"),
			Identify:      getEnv("IDENTIFY_BIN", "identify"),
			TesseractLang: getEnv("TESSERACT_LANG", "pol+eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			Timeout:       getEnvAsDuration("OCR_TIMEOUT", 60*time.Second),
		},
		Vision: VisionConfig{
			BaseURL: getEnv("VISION_BASE_URL", "https://api.openai.com/v1"),
			APIKey:  getEnv("VISION_API_KEY", ""),
			Model:   getEnv("VISION_MODEL", "gpt-4o-mini"),
			Timeout: getEnvAsDuration("VISION_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			MinConfidence:  getEnvAsFloat64("PIPELINE_MIN_CONFIDENCE", 0.8),
			AcceptDPI:      getEnvAsInt("PIPELINE_ACCEPT_DPI", 300),
			FuzzyThreshold: getEnvAsInt("PIPELINE_FUZZY_THRESHOLD", 85),
			TotalTolerance: getEnv("PIPELINE_TOTAL_TOLERANCE", "0.05"),
			LineTolerance:  getEnv("PIPELINE_LINE_TOLERANCE", "0.05"),
			MinSamples:     getEnvAsInt("PIPELINE_MIN_SAMPLES", 2),
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 4),
			OCRSlots:       int64(getEnvAsInt("PIPELINE_OCR_SLOTS", 2)),
			MatchSlots:     int64(getEnvAsInt("PIPELINE_MATCH_SLOTS", 4)),
			StageTimeout:   getEnvAsDuration("PIPELINE_STAGE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.MinConfidence <= 0 || c.Pipeline.MinConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_MIN_CONFIDENCE must be in (0,1]", ErrInvalidInput)
	}
	if c.Pipeline.FuzzyThreshold <= 0 || c.Pipeline.FuzzyThreshold > 100 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_FUZZY_THRESHOLD must be in (0,100]", ErrInvalidInput)
	}
	return nil
}
