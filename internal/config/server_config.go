package config

import (
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github/chapool/humtoken/internal/util"
)

type EchoServer struct {
	Debug                     bool
	ListenAddress             string
	EnableCORS                bool
	EnableLoggerMiddleware    bool
	EnableRecoverMiddleware   bool
	EnableRequestIDMiddleware bool
	BodyLimit                 string
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	PrettyPrintConsole bool
}

type ManagementServer struct {
	ProbeTimeout  time.Duration
	EnableMetrics bool
}

// Chain configures the single JSON-RPC endpoint and the token deployment.
type Chain struct {
	// may embed provider credentials, never printed
	NetworkURL          string `json:"-"`
	TokenAddress        string
	Decimals            uint8
	ConfirmationTimeout time.Duration
	ReadTimeout         time.Duration
}

// Server is built once at startup and passed explicitly to every component.
type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Management ManagementServer
	Chain      Chain
}

// DefaultServiceConfigFromEnv returns the server config as parsed from the
// environment, with defaults applied. Values from `.env.local` and `.env` in
// the project root are used for variables not already set.
func DefaultServiceConfigFromEnv() Server {
	if !util.RunningInTest() {
		DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env.local"), SetEnvIfUnset)
		DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env"), SetEnvIfUnset)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVER_ECHO_DEBUG", false)
	v.SetDefault("SERVER_ECHO_LISTEN_ADDRESS", ":3001")
	v.SetDefault("SERVER_ECHO_ENABLE_CORS", true)
	v.SetDefault("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_BODY_LIMIT", "64K")
	v.SetDefault("SERVER_LOGGER_LEVEL", zerolog.InfoLevel.String())
	v.SetDefault("SERVER_LOGGER_REQUEST_LEVEL", zerolog.InfoLevel.String())
	v.SetDefault("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false)
	v.SetDefault("SERVER_MANAGEMENT_PROBE_TIMEOUT", 5*time.Second)
	v.SetDefault("SERVER_MANAGEMENT_ENABLE_METRICS", true)
	v.SetDefault("NETWORK_URL", "")
	v.SetDefault("HUM_TOKEN_ADDRESS", "")
	v.SetDefault("TOKEN_DECIMALS", 18)
	v.SetDefault("CHAIN_CONFIRMATION_TIMEOUT", 2*time.Minute)
	v.SetDefault("CHAIN_READ_TIMEOUT", 10*time.Second)

	return Server{
		Echo: EchoServer{
			Debug:                     v.GetBool("SERVER_ECHO_DEBUG"),
			ListenAddress:             v.GetString("SERVER_ECHO_LISTEN_ADDRESS"),
			EnableCORS:                v.GetBool("SERVER_ECHO_ENABLE_CORS"),
			EnableLoggerMiddleware:    v.GetBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE"),
			EnableRecoverMiddleware:   v.GetBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE"),
			EnableRequestIDMiddleware: v.GetBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE"),
			BodyLimit:                 v.GetString("SERVER_ECHO_BODY_LIMIT"),
		},
		Logger: LoggerServer{
			Level:              logLevel(v.GetString("SERVER_LOGGER_LEVEL")),
			RequestLevel:       logLevel(v.GetString("SERVER_LOGGER_REQUEST_LEVEL")),
			PrettyPrintConsole: v.GetBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE"),
		},
		Management: ManagementServer{
			ProbeTimeout:  v.GetDuration("SERVER_MANAGEMENT_PROBE_TIMEOUT"),
			EnableMetrics: v.GetBool("SERVER_MANAGEMENT_ENABLE_METRICS"),
		},
		Chain: Chain{
			NetworkURL:          v.GetString("NETWORK_URL"),
			TokenAddress:        v.GetString("HUM_TOKEN_ADDRESS"),
			Decimals:            tokenDecimals(v.GetInt("TOKEN_DECIMALS")),
			ConfirmationTimeout: v.GetDuration("CHAIN_CONFIRMATION_TIMEOUT"),
			ReadTimeout:         v.GetDuration("CHAIN_READ_TIMEOUT"),
		},
	}
}

func logLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		log.Warn().Str("level", s).Msg("Unknown log level, using info")
		return zerolog.InfoLevel
	}
	return level
}

func tokenDecimals(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		log.Warn().Int("decimals", n).Msg("TOKEN_DECIMALS out of range, using 18")
		return 18
	}
	return uint8(n)
}
