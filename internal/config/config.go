package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	AppName    = "Kisan Bandhu Console"
	AppVersion = "1.0.0"
)

// ConsoleUserAgent identifies outbound requests made on behalf of the console
// (feed imports, article extraction, image uploads).
var ConsoleUserAgent = "Mozilla/5.0 (compatible; KisanBandhuConsole/" + AppVersion + ")"

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	StaticDir string

	// UpstreamURL is the base URL of the platform backend that owns all
	// authoritative scheme/crop/news/notification state.
	UpstreamURL string

	// Single shared admin identity. There is no user database.
	AdminUser     string
	AdminPassword string

	// Optional outbound proxy for upstream/feed/image traffic.
	ProxyURL string

	CloudinaryCloud  string
	CloudinaryPreset string

	// Optional AI translation assistant. Disabled when APIKey is empty.
	AIProvider string
	AIAPIKey   string
	AIBaseURL  string
	AIModel    string

	LogLevel      string
	SnowflakeNode int64
}

func Load() Config {
	addr := getenv("KB_ADDR", ":8080")
	dataDir := getenv("KB_DATA_DIR", "./data")
	dbPath := os.Getenv("KB_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "console.db")
	}
	staticDir := os.Getenv("KB_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	node := int64(0)
	if raw := os.Getenv("KB_SNOWFLAKE_NODE"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			node = parsed
		}
	}

	return Config{
		Addr:      addr,
		DBPath:    filepath.Clean(dbPath),
		DataDir:   filepath.Clean(dataDir),
		StaticDir: filepath.Clean(staticDir),

		UpstreamURL: getenv("KB_UPSTREAM_URL", "http://localhost:4000"),

		AdminUser:     os.Getenv("KB_ADMIN_USER"),
		AdminPassword: os.Getenv("KB_ADMIN_PASSWORD"),

		ProxyURL: os.Getenv("KB_PROXY_URL"),

		CloudinaryCloud:  os.Getenv("KB_CLOUDINARY_CLOUD"),
		CloudinaryPreset: os.Getenv("KB_CLOUDINARY_PRESET"),

		AIProvider: getenv("KB_AI_PROVIDER", "openai"),
		AIAPIKey:   os.Getenv("KB_AI_API_KEY"),
		AIBaseURL:  os.Getenv("KB_AI_BASE_URL"),
		AIModel:    os.Getenv("KB_AI_MODEL"),

		LogLevel:      getenv("KB_LOG_LEVEL", "info"),
		SnowflakeNode: node,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
