package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10M"
	defaultPort               = 3000
	defaultAccessTokenTTL     = 7 * 24 * time.Hour
	defaultRefreshTokenTTL    = 30 * 24 * time.Hour
	defaultBcryptCost         = 12
	defaultRateLimitMax       = 300
	defaultRateLimitWindow    = 15 * time.Minute
	defaultUploadMaxSize      = 10 << 20
	minProductionSecretLength = 32

	defaultSlowQueryThreshold  = 200 * time.Millisecond
	defaultMaxLoggedSQLLength  = 2000
	defaultPoolMonitorInterval = 5 * time.Second
	defaultPoolWaitWarn        = 50 * time.Millisecond
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

const (
	StorageCloudinary = "cloudinary"
	StorageS3         = "s3"
	StorageBackblaze  = "backblaze"
	StorageSupabase   = "supabase"
	StorageFile       = "file"
	StorageMemory     = "memory"
)

const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Version     string `json:"version" yaml:"version"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// PubSub configuration for catalog event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for manga share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	CorsOrigin         string `json:"corsOrigin" yaml:"corsOrigin"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// RateLimitConfig holds the request budgets per limiter; each budget is spent over its window.
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Max            int           `json:"max" yaml:"max"`
	Window         time.Duration `json:"window" yaml:"window"`
	ReadingMax     int           `json:"readingMax" yaml:"readingMax"`
	AuthMax        int           `json:"authMax" yaml:"authMax"`
	PasswordMax    int           `json:"passwordMax" yaml:"passwordMax"`
	PasswordWindow time.Duration `json:"passwordWindow" yaml:"passwordWindow"`
}

// DatabaseConfig tunes query logging and connection pool monitoring.
type DatabaseConfig struct {
	SlowQueryThreshold  time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	MaxLoggedSQLLength  int           `json:"maxLoggedSqlLength" yaml:"maxLoggedSqlLength"`
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
	PoolWaitWarn        time.Duration `json:"poolWaitWarn" yaml:"poolWaitWarn"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	Dir    string `json:"dir" yaml:"dir"`
}

// StorageConfig selects the object storage provider and carries every provider's credential set.
type StorageConfig struct {
	Provider      string   `json:"provider" yaml:"provider"`
	MaxUploadSize int64    `json:"maxUploadSize" yaml:"maxUploadSize"`
	AllowedMimes  []string `json:"allowedMimes" yaml:"allowedMimes"`

	S3 struct {
		Region          string `json:"region" yaml:"region"`
		Bucket          string `json:"bucket" yaml:"bucket"`
		AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
		SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	} `json:"s3" yaml:"s3"`

	Backblaze struct {
		KeyID       string `json:"keyId" yaml:"keyId"`
		AppKey      string `json:"appKey" yaml:"appKey"`
		BucketName  string `json:"bucketName" yaml:"bucketName"`
		Region      string `json:"region" yaml:"region"`
		Endpoint    string `json:"endpoint" yaml:"endpoint"`
		DownloadURL string `json:"downloadUrl" yaml:"downloadUrl"`
	} `json:"backblaze" yaml:"backblaze"`

	Cloudinary struct {
		CloudName string `json:"cloudName" yaml:"cloudName"`
		APIKey    string `json:"apiKey" yaml:"apiKey"`
		APISecret string `json:"apiSecret" yaml:"apiSecret"`
		Folder    string `json:"folder" yaml:"folder"`
	} `json:"cloudinary" yaml:"cloudinary"`

	Supabase struct {
		URL    string `json:"url" yaml:"url"`
		Key    string `json:"key" yaml:"key"`
		Bucket string `json:"bucket" yaml:"bucket"`
	} `json:"supabase" yaml:"supabase"`

	File struct {
		Dir     string `json:"dir" yaml:"dir"`
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"file" yaml:"file"`
}

// CacheConfig tunes the in-process cache used for geographic reference data.
type CacheConfig struct {
	Size int           `json:"size" yaml:"size"`
	TTL  time.Duration `json:"ttl" yaml:"ttl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`

	TopicID string `json:"topicId" yaml:"topicId"`

	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// envAliases maps conventional process variables onto config paths.
var envAliases = map[string]string{
	"NODE_ENV":               "env.env",
	"APP_ENV":                "env.env",
	"APP_NAME":               "env.serviceName",
	"LOG_DIR":                "env.log.dir",
	"LOG_LEVEL":              "env.log.level",
	"PORT":                   "http.port",
	"CORS_ORIGIN":            "http.corsOrigin",
	"RATE_LIMIT":             "http.rateLimit.max",
	"JWT_SECRET":             "secretKey.access",
	"JWT_EXPIRES_IN":         "auth.accessTokenTTL",
	"JWT_REFRESH_SECRET":     "secretKey.refresh",
	"JWT_REFRESH_EXPIRES_IN": "auth.refreshTokenTTL",
	"STORAGE_PROVIDER":       "storage.provider",
	"DB_HOST":                "postgres.master.host",
	"DB_PORT":                "postgres.master.port",
	"DB_USER":                "postgres.master.userName",
	"DB_PASSWORD":            "postgres.master.password",
	"DB_DATABASE":            "postgres.database",
	"DB_SCHEMA":              "postgres.schema",
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			if alias, ok := envAliases[k]; ok {
				return alias, v
			}

			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToDurationWithDaysHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.Env.Env) == "" {
		cfg.Env.Env = EnvDevelopment
	}
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "mangahub"
	}
	if cfg.Env.Version == "" {
		cfg.Env.Version = "1.0.0"
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
		if cfg.Env.Env == EnvDevelopment {
			cfg.Env.Log.Level = "debug"
		}
	}

	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.CorsOrigin == "" {
		cfg.HTTP.CorsOrigin = "*"
	}

	rl := &cfg.HTTP.RateLimit
	if rl.Max == 0 {
		rl.Max = defaultRateLimitMax
	}
	if rl.Window == 0 {
		rl.Window = defaultRateLimitWindow
	}
	if rl.ReadingMax == 0 {
		rl.ReadingMax = 2 * rl.Max
	}
	if rl.AuthMax == 0 {
		rl.AuthMax = 10
	}
	if rl.PasswordMax == 0 {
		rl.PasswordMax = 5
	}
	if rl.PasswordWindow == 0 {
		rl.PasswordWindow = time.Hour
	}

	db := &cfg.Database
	if db.SlowQueryThreshold == 0 {
		db.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if db.MaxLoggedSQLLength == 0 {
		db.MaxLoggedSQLLength = defaultMaxLoggedSQLLength
	}
	if db.PoolMonitorInterval == 0 {
		db.PoolMonitorInterval = defaultPoolMonitorInterval
	}
	if db.PoolWaitWarn == 0 {
		db.PoolWaitWarn = defaultPoolWaitWarn
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = StorageCloudinary
	}
	if cfg.Storage.MaxUploadSize == 0 {
		cfg.Storage.MaxUploadSize = defaultUploadMaxSize
	}
	if len(cfg.Storage.AllowedMimes) == 0 {
		cfg.Storage.AllowedMimes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	}
	if cfg.Storage.Cloudinary.Folder == "" {
		cfg.Storage.Cloudinary.Folder = "manga-uploads"
	}
	if cfg.Storage.S3.Region == "" {
		cfg.Storage.S3.Region = "us-east-1"
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = 1024
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = time.Hour
	}
}

// IsProduction reports whether the service runs with production settings.
func (cfg *Config) IsProduction() bool {
	return cfg.Env.Env == EnvProduction
}

// IsDevelopment reports whether the service runs with development settings.
func (cfg *Config) IsDevelopment() bool {
	return cfg.Env.Env == EnvDevelopment
}

// Validate rejects configurations the service cannot run with.
func (cfg *Config) Validate() error {
	var problems []string

	switch cfg.Env.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		problems = append(problems, "env.env must be one of development, production, test")
	}

	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		problems = append(problems, "http.port must be between 1 and 65535")
	}
	if cfg.HTTP.RateLimit.Max < 1 {
		problems = append(problems, "http.rateLimit.max must be at least 1")
	}

	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		problems = append(problems, "secretKey.access and secretKey.refresh are required")
	}
	if cfg.IsProduction() &&
		(len(cfg.SecretKey.Access) < minProductionSecretLength || len(cfg.SecretKey.Refresh) < minProductionSecretLength) {
		problems = append(problems, "jwt secrets must be at least 32 characters in production")
	}

	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
			problems = append(problems, "auth token TTLs must be positive")
		}
		if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31 {
			problems = append(problems, "auth.bcryptCost must be between 4 and 31")
		}
	}

	if cfg.Storage != nil {
		problems = append(problems, cfg.Storage.validate()...)
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

func (s *StorageConfig) validate() []string {
	missing := func(fields map[string]string) []string {
		var out []string
		for name, value := range fields {
			if strings.TrimSpace(value) == "" {
				out = append(out, "storage."+name+" is required for provider "+s.Provider)
			}
		}

		return out
	}

	switch s.Provider {
	case StorageCloudinary:
		return missing(map[string]string{
			"cloudinary.cloudName": s.Cloudinary.CloudName,
			"cloudinary.apiKey":    s.Cloudinary.APIKey,
			"cloudinary.apiSecret": s.Cloudinary.APISecret,
		})
	case StorageS3:
		return missing(map[string]string{
			"s3.bucket":          s.S3.Bucket,
			"s3.accessKeyId":     s.S3.AccessKeyID,
			"s3.secretAccessKey": s.S3.SecretAccessKey,
		})
	case StorageBackblaze:
		return missing(map[string]string{
			"backblaze.keyId":      s.Backblaze.KeyID,
			"backblaze.appKey":     s.Backblaze.AppKey,
			"backblaze.bucketName": s.Backblaze.BucketName,
			"backblaze.endpoint":   s.Backblaze.Endpoint,
		})
	case StorageSupabase:
		return missing(map[string]string{
			"supabase.url":    s.Supabase.URL,
			"supabase.key":    s.Supabase.Key,
			"supabase.bucket": s.Supabase.Bucket,
		})
	case StorageFile:
		return missing(map[string]string{"file.dir": s.File.Dir})
	case StorageMemory:
		return nil
	default:
		return []string{"storage.provider must be one of cloudinary, s3, backblaze, supabase, file, memory"}
	}
}

// stringToDurationWithDaysHookFunc accepts Go durations plus a trailing "d" day unit ("7d", "30d").
func stringToDurationWithDaysHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		return ParseDuration(data.(string))
	}
}

// ParseDuration parses a duration that may use a day suffix.
func ParseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid day duration %q", raw)
		}

		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid duration %q", raw)
	}

	return d, nil
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
