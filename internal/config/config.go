package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultFade          = 400 * time.Millisecond
	defaultDebounce      = 100 * time.Millisecond
	defaultAudioRetries  = 3
	defaultAudioInterval = 2 * time.Second

	// StatusEnv carries the startup status blob from the host process
	StatusEnv = "VP_PSTATUS"
)

// defaultEngineArgs mirror the flags the host has always started the engine with
var defaultEngineArgs = []string{
	"--no-video-title-show",
	"--avcodec-hw=any",
	"--no-drop-late-frames",
	"--no-skip-frames",
}

// Flags holds command-line overrides. Nil fields keep the environment value.
type Flags struct {
	InstantSwap   *bool
	Fade          *time.Duration
	Debounce      *time.Duration
	DiagAddr      *string
	RaisePriority *bool
}

// AppConfig holds application configuration
type AppConfig struct {
	logger             *zap.Logger
	instantSwap        bool
	fade               time.Duration
	debounce           time.Duration
	audioRetries       int
	audioRetryInterval time.Duration
	diagAddr           string
	raisePriority      bool
	engineArgs         []string
	initial            domain.InitialStatus
	initialErr         error
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger, flags Flags) *AppConfig {
	// A missing .env is the normal case
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file")
	}

	cfg := &AppConfig{
		logger:             logger,
		instantSwap:        getEnvBool("DUOPLAYER_INSTANT_SWAP", true),
		fade:               getEnvMillis("DUOPLAYER_FADE_MS", defaultFade),
		debounce:           getEnvMillis("DUOPLAYER_DEBOUNCE_MS", defaultDebounce),
		audioRetries:       getEnvInt("DUOPLAYER_AUDIO_RETRIES", defaultAudioRetries),
		audioRetryInterval: getEnvMillis("DUOPLAYER_AUDIO_RETRY_MS", defaultAudioInterval),
		diagAddr:           os.Getenv("DUOPLAYER_DIAG_ADDR"),
		raisePriority:      getEnvBool("DUOPLAYER_PRIORITY", true),
		engineArgs:         defaultEngineArgs,
	}

	if args := strings.Fields(os.Getenv("DUOPLAYER_VLC_ARGS")); len(args) > 0 {
		cfg.engineArgs = args
	}
	if cfg.audioRetries < 1 {
		cfg.audioRetries = 1
	}

	cfg.applyFlags(flags)
	cfg.initial, cfg.initialErr = ParseInitialStatus(os.Getenv(StatusEnv))

	logger.Info("Configuration loaded",
		zap.Bool("instantSwap", cfg.instantSwap),
		zap.Duration("fade", cfg.fade),
		zap.Duration("debounce", cfg.debounce),
		zap.Int("audioRetries", cfg.audioRetries),
		zap.Duration("audioRetryInterval", cfg.audioRetryInterval),
		zap.String("diagAddr", cfg.diagAddr),
		zap.Bool("raisePriority", cfg.raisePriority))

	return cfg
}

func (c *AppConfig) applyFlags(f Flags) {
	if f.InstantSwap != nil {
		c.instantSwap = *f.InstantSwap
	}
	if f.Fade != nil {
		c.fade = *f.Fade
	}
	if f.Debounce != nil {
		c.debounce = *f.Debounce
	}
	if f.DiagAddr != nil {
		c.diagAddr = *f.DiagAddr
	}
	if f.RaisePriority != nil {
		c.raisePriority = *f.RaisePriority
	}
}

// ParseInitialStatus decodes the startup blob over the defaults.
// An empty blob is not an error; a malformed one yields the defaults and the error.
func ParseInitialStatus(blob string) (domain.InitialStatus, error) {
	status := domain.DefaultInitialStatus()
	if strings.TrimSpace(blob) == "" {
		return status, nil
	}
	parsed := status
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
		return status, domain.Invalid(err, "cannot parse "+StatusEnv)
	}
	if parsed.ImageTime <= 0 {
		parsed.ImageTime = status.ImageTime
	}
	if parsed.Background == "" {
		parsed.Background = status.Background
	}
	if parsed.Device.AudioDevice == "" {
		parsed.Device.AudioDevice = status.Device.AudioDevice
	}
	return parsed, nil
}

// InstantSwap selects the hard-cut transition
func (c *AppConfig) InstantSwap() bool { return c.instantSwap }

// FadeDuration is the length of the opacity fade
func (c *AppConfig) FadeDuration() time.Duration { return c.fade }

// DebounceWindow is the duplicate-command window
func (c *AppConfig) DebounceWindow() time.Duration { return c.debounce }

// AudioRetries bounds the audio device attempts
func (c *AppConfig) AudioRetries() int { return c.audioRetries }

// AudioRetryInterval is the pause between audio device attempts
func (c *AppConfig) AudioRetryInterval() time.Duration { return c.audioRetryInterval }

// DiagAddr is the diagnostics listen address
func (c *AppConfig) DiagAddr() string { return c.diagAddr }

// RaisePriority enables the process priority tweak
func (c *AppConfig) RaisePriority() bool { return c.raisePriority }

// EngineArgs are handed to the playback engine
func (c *AppConfig) EngineArgs() []string { return c.engineArgs }

// Initial returns the startup status
func (c *AppConfig) Initial() domain.InitialStatus { return c.initial }

// InitialErr returns the error met while parsing the startup status, if any
func (c *AppConfig) InitialErr() error { return c.initialErr }

func getEnvBool(key string, fallback bool) bool {
	if s := os.Getenv(key); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvMillis(key string, fallback time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return fallback
}
