package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// EnvDevelop is the env.env value of local development.
const EnvDevelop = "develop"

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey holds server-side secrets. Token and Password are derived from
	// Master when left empty.
	SecretKey struct {
		Master   string `json:"master" yaml:"master"`
		Token    string `json:"token" yaml:"token"`
		Password string `json:"password" yaml:"password"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	NFC *NFCConfig `json:"nfc" yaml:"nfc"`

	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	// KV configures the store for challenges and one-time sessions
	KV *KVConfig `json:"kv" yaml:"kv"`

	// PubSub configuration for balance change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for tab QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// PasswordAlgorithm is "argon2id" (default) or "bcrypt".
	PasswordAlgorithm string        `json:"passwordAlgorithm" yaml:"passwordAlgorithm"`
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	Argon2            Argon2Config  `json:"argon2" yaml:"argon2"`
	LongSessionTTL    time.Duration `json:"longSessionTTL" yaml:"longSessionTTL"`
	// LongSessionMaxLifetime caps a sliding session regardless of activity.
	LongSessionMaxLifetime time.Duration `json:"longSessionMaxLifetime" yaml:"longSessionMaxLifetime"`
	OnetimeTTL             time.Duration `json:"onetimeTTL" yaml:"onetimeTTL"`
	AccessTokenTTL         time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	PasswordResetTTL       time.Duration `json:"passwordResetTTL" yaml:"passwordResetTTL"`
	InvitationTTL          time.Duration `json:"invitationTTL" yaml:"invitationTTL"`
	// CleanupInterval is how often expired durable sessions are purged
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
}

// Argon2Config defines the argon2id cost parameters
type Argon2Config struct {
	Time    uint32 `json:"time" yaml:"time"`
	Memory  uint32 `json:"memory" yaml:"memory"` // KiB
	Threads uint8  `json:"threads" yaml:"threads"`
	KeyLen  uint32 `json:"keyLen" yaml:"keyLen"`
}

// NFCConfig defines the card handshake configuration
type NFCConfig struct {
	ChallengeTTL time.Duration `json:"challengeTTL" yaml:"challengeTTL"`
	// Encoding of byte fields on the wire: "hex" or "base64"
	Encoding string `json:"encoding" yaml:"encoding"`
	// GenericKey and MifareKey are hex reader keys used when a card has no own secret
	GenericKey string `json:"genericKey" yaml:"genericKey"`
	MifareKey  string `json:"mifareKey" yaml:"mifareKey"`
}

// LedgerConfig defines the transaction engine configuration
type LedgerConfig struct {
	// StampThreshold is the number of stamps that pays for one item
	StampThreshold int64         `json:"stampThreshold" yaml:"stampThreshold"`
	MaxRetries     int           `json:"maxRetries" yaml:"maxRetries"`
	RetryBackoff   time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
}

// KVConfig defines the key-value store configuration
type KVConfig struct {
	// Driver is "memory" (default) or "redis"
	Driver     string        `json:"driver" yaml:"driver"`
	GCInterval time.Duration `json:"gcInterval" yaml:"gcInterval"`
	Redis      RedisConfig   `json:"redis" yaml:"redis"`
}

// RedisConfig defines the redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "bus" (in-process, default), "local" for local HTTP,
	// "google" for Google Pub/Sub or "gocloud" for a Go CDK topic URL
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Topic URL such as mem://balance or gcppubsub://... (for gocloud provider)
	URL string `json:"url" yaml:"url"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults fills every unset section and value with its default.
func ApplyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	auth := cfg.Auth
	auth.PasswordAlgorithm = defaultString(auth.PasswordAlgorithm, "argon2id")
	auth.BcryptCost = defaultValue(auth.BcryptCost, 12)
	auth.Argon2.Time = defaultValue(auth.Argon2.Time, 3)
	auth.Argon2.Memory = defaultValue(auth.Argon2.Memory, 64*1024)
	auth.Argon2.Threads = defaultValue(auth.Argon2.Threads, 2)
	auth.Argon2.KeyLen = defaultValue(auth.Argon2.KeyLen, 32)
	auth.LongSessionTTL = defaultValue(auth.LongSessionTTL, 10*time.Minute)
	auth.LongSessionMaxLifetime = defaultValue(auth.LongSessionMaxLifetime, 30*24*time.Hour)
	auth.OnetimeTTL = defaultValue(auth.OnetimeTTL, 10*time.Second)
	auth.AccessTokenTTL = defaultValue(auth.AccessTokenTTL, time.Minute)
	auth.PasswordResetTTL = defaultValue(auth.PasswordResetTTL, 30*time.Minute)
	auth.InvitationTTL = defaultValue(auth.InvitationTTL, 24*time.Hour)
	auth.CleanupInterval = defaultValue(auth.CleanupInterval, 10*time.Minute)

	if cfg.NFC == nil {
		cfg.NFC = &NFCConfig{}
	}
	cfg.NFC.ChallengeTTL = defaultValue(cfg.NFC.ChallengeTTL, 10*time.Second)
	cfg.NFC.Encoding = defaultString(cfg.NFC.Encoding, "hex")

	if cfg.Ledger == nil {
		cfg.Ledger = &LedgerConfig{}
	}
	cfg.Ledger.StampThreshold = defaultValue(cfg.Ledger.StampThreshold, 10)
	cfg.Ledger.MaxRetries = defaultValue(cfg.Ledger.MaxRetries, 8)
	cfg.Ledger.RetryBackoff = defaultValue(cfg.Ledger.RetryBackoff, 10*time.Millisecond)

	if cfg.KV == nil {
		cfg.KV = &KVConfig{}
	}
	cfg.KV.Driver = defaultString(cfg.KV.Driver, "memory")
	cfg.KV.GCInterval = defaultValue(cfg.KV.GCInterval, time.Minute)

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	cfg.PubSub.Provider = defaultString(cfg.PubSub.Provider, "bus")

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	cfg.QRCode.Size = defaultValue(cfg.QRCode.Size, 256)
	cfg.QRCode.ErrorCorrectionLevel = defaultString(cfg.QRCode.ErrorCorrectionLevel, "M")
}

func defaultValue[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}

	return v
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}

	return v
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
