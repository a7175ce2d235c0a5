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

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"

	defaultLocale            = "es"
	defaultTimezone          = "America/Bogota"
	defaultPageSize          = 24
	defaultMaxPageSize       = 100
	defaultSessionTTL        = 30 * time.Minute
	defaultJanitorInterval   = time.Minute
	defaultRecentlyViewedMax = 10
	defaultNearbyRadiusKm    = 2.0
	defaultRotationInterval  = 5 * time.Second
	defaultRefreshInterval   = 5 * time.Minute
	defaultMaxImageBytes     = 5 << 20
	defaultAccessTokenTTL    = 12 * time.Hour
	defaultPublicBaseURL     = "http://localhost:8080"
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

	// Database selects the GORM driver. Postgres is used when configured, SQLite otherwise.
	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Directory *DirectoryConfig `json:"directory" yaml:"directory"`

	Promotions *PromotionsConfig `json:"promotions" yaml:"promotions"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Assistant *AssistantConfig `json:"assistant" yaml:"assistant"`

	// Firebase configuration for moderator push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Notify *NotifyConfig `json:"notify" yaml:"notify"`

	// QRCode configuration for business share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// PMTiles configuration for basemap tiles
	PMTiles *PMTilesConfig `json:"pmtiles" yaml:"pmtiles"`

	MCP *MCPConfig `json:"mcp" yaml:"mcp"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines driver selection and schema management
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver      string `json:"driver" yaml:"driver"`
	SQLitePath  string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`

	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines moderator authentication settings
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

// DirectoryConfig defines listing, hours and session behaviour
type DirectoryConfig struct {
	// Locale of the day names used as hours keys ("es" or "en")
	Locale   string `json:"locale" yaml:"locale"`
	Timezone string `json:"timezone" yaml:"timezone"`

	PageSize    int `json:"pageSize" yaml:"pageSize"`
	MaxPageSize int `json:"maxPageSize" yaml:"maxPageSize"`

	SessionTTL        time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
	JanitorInterval   time.Duration `json:"janitorInterval" yaml:"janitorInterval"`
	RecentlyViewedMax int           `json:"recentlyViewedMax" yaml:"recentlyViewedMax"`
	NearbyRadiusKm    float64       `json:"nearbyRadiusKm" yaml:"nearbyRadiusKm"`

	// Submission defaults
	DefaultCity    string `json:"defaultCity" yaml:"defaultCity"`
	DefaultState   string `json:"defaultState" yaml:"defaultState"`
	DefaultZipCode string `json:"defaultZipCode" yaml:"defaultZipCode"`

	// PublicBaseURL is the front-end origin used in share links
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// PromotionsConfig defines the promotion banner rotation
type PromotionsConfig struct {
	RotationInterval time.Duration `json:"rotationInterval" yaml:"rotationInterval"`
	RefreshInterval  time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
}

// StorageConfig defines where submitted images are kept
type StorageConfig struct {
	// Provider is "file", "memory" or "s3"
	Provider      string `json:"provider" yaml:"provider"`
	Dir           string `json:"dir" yaml:"dir"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxImageBytes int64  `json:"maxImageBytes" yaml:"maxImageBytes"`

	S3 struct {
		Endpoint  string `json:"endpoint" yaml:"endpoint"`
		Region    string `json:"region" yaml:"region"`
		Bucket    string `json:"bucket" yaml:"bucket"`
		AccessKey string `json:"accessKey" yaml:"accessKey"`
		SecretKey string `json:"secretKey" yaml:"secretKey"`
	} `json:"s3" yaml:"s3"`
}

// AssistantConfig defines the optional language model behind the chat
type AssistantConfig struct {
	// Provider is "gemini" or empty for the rule-based responder
	Provider string        `json:"provider" yaml:"provider"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Model    string        `json:"model" yaml:"model"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// NotifyConfig lists the devices that receive moderation alerts
type NotifyConfig struct {
	ModeratorTokens []string `json:"moderatorTokens" yaml:"moderatorTokens"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// PMTilesConfig defines the basemap archive
type PMTilesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Bucket URL or local directory holding the archive
	Bucket string `json:"bucket" yaml:"bucket"`

	// Archive name without the .pmtiles extension
	Tileset string `json:"tileset" yaml:"tileset"`

	CacheSizeMB int `json:"cacheSizeMb" yaml:"cacheSizeMb"`

	// Zoom used to pick the detail map tile of a business
	DetailZoom int `json:"detailZoom" yaml:"detailZoom"`
}

// MCPConfig toggles the MCP tool endpoints
type MCPConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: DIRECTORY_SESSIONTTL -> directory.sessionTtl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
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
				mapstructure.StringToTimeDurationHookFunc(),
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

	cfg.ApplyDefaults()

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see nil sections.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
		if cfg.Postgres == nil {
			cfg.Database.Driver = "sqlite"
		}
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "directorio.db"
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	cfg.Directory = withDirectoryDefaults(cfg.Directory)

	if cfg.Promotions == nil {
		cfg.Promotions = &PromotionsConfig{}
	}
	if cfg.Promotions.RotationInterval <= 0 {
		cfg.Promotions.RotationInterval = defaultRotationInterval
	}
	if cfg.Promotions.RefreshInterval <= 0 {
		cfg.Promotions.RefreshInterval = defaultRefreshInterval
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{Provider: "memory"}
	}
	if cfg.Storage.MaxImageBytes <= 0 {
		cfg.Storage.MaxImageBytes = defaultMaxImageBytes
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
}

func withDirectoryDefaults(dir *DirectoryConfig) *DirectoryConfig {
	if dir == nil {
		dir = &DirectoryConfig{}
	}
	if dir.Locale == "" {
		dir.Locale = defaultLocale
	}
	if dir.Timezone == "" {
		dir.Timezone = defaultTimezone
	}
	if dir.PageSize <= 0 {
		dir.PageSize = defaultPageSize
	}
	if dir.MaxPageSize < dir.PageSize {
		dir.MaxPageSize = max(defaultMaxPageSize, dir.PageSize)
	}
	if dir.SessionTTL <= 0 {
		dir.SessionTTL = defaultSessionTTL
	}
	if dir.JanitorInterval <= 0 {
		dir.JanitorInterval = defaultJanitorInterval
	}
	if dir.RecentlyViewedMax <= 0 {
		dir.RecentlyViewedMax = defaultRecentlyViewedMax
	}
	if dir.NearbyRadiusKm <= 0 {
		dir.NearbyRadiusKm = defaultNearbyRadiusKm
	}
	if dir.DefaultCity == "" {
		dir.DefaultCity = "Gachetá"
	}
	if dir.DefaultState == "" {
		dir.DefaultState = "Cundinamarca"
	}
	if dir.DefaultZipCode == "" {
		dir.DefaultZipCode = "251230"
	}
	if dir.PublicBaseURL == "" {
		dir.PublicBaseURL = defaultPublicBaseURL
	}

	return dir
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
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
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

// Location resolves the directory time zone.
func (dir *DirectoryConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(dir.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load time zone %q", dir.Timezone)
	}

	return loc, nil
}
