package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento y respaldo soportados.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	BackupFS   = "fs"
	BackupS3   = "s3"
	BackupNone = "none"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Storage   StorageConfig
	DB        DBConfig
	Backup    BackupConfig
	PDF       PDFConfig
	Auth      AuthConfig
	Dashboard DashboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas; "*" = cualquier origen
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig elige dónde se guardan los rachunki procesados.
type StorageConfig struct {
	Driver string // memory | postgres
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// BackupConfig destino de las copias de seguridad de los PDF.
type BackupConfig struct {
	Driver   string // fs | s3 | none
	Dir      string
	Bucket   string
	Region   string
	S3Prefix string
}

// PDFConfig fuentes TTF opcionales. Sin ellas se usan las fuentes base y se
// eliminan los diacríticos polacos.
type PDFConfig struct {
	FontRegular string
	FontBold    string
}

// AuthConfig protección opcional de /api con Bearer JWT.
type AuthConfig struct {
	JWTSecret string // vacío = API abierta
	Issuer    string
}

// Enabled indica si /api exige token.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// DashboardConfig parámetros del resumen financiero.
type DashboardConfig struct {
	SavingsRate float64 // fracción del bruto sugerida para apartar (impuestos/ZUS)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "finbot-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8000),
			CORSOrigins: getString(v, "CORS_ALLOW_ORIGINS", "*"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", StorageMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "finbot"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Backup: BackupConfig{
			Driver:   strings.ToLower(getString(v, "BACKUP_DRIVER", BackupFS)),
			Dir:      getString(v, "BACKUP_DIR", "backups"),
			Bucket:   getString(v, "BACKUP_S3_BUCKET", ""),
			Region:   getString(v, "BACKUP_S3_REGION", "eu-central-1"),
			S3Prefix: getString(v, "BACKUP_S3_PREFIX", "backups/"),
		},
		PDF: PDFConfig{
			FontRegular: getString(v, "PDF_FONT_REGULAR", ""),
			FontBold:    getString(v, "PDF_FONT_BOLD", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getString(v, "AUTH_JWT_SECRET", ""),
			Issuer:    getString(v, "AUTH_JWT_ISSUER", "finbot-api"),
		},
		Dashboard: DashboardConfig{
			SavingsRate: getFloat(v, "DASHBOARD_SAVINGS_RATE", 0.20),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate comprueba combinaciones de valores que no tienen sentido.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q (memory|postgres)", c.Storage.Driver)
	}
	switch c.Backup.Driver {
	case BackupFS, BackupNone:
	case BackupS3:
		if c.Backup.Bucket == "" {
			return fmt.Errorf("config: BACKUP_S3_BUCKET es obligatorio con BACKUP_DRIVER=s3")
		}
	default:
		return fmt.Errorf("config: BACKUP_DRIVER desconocido %q (fs|s3|none)", c.Backup.Driver)
	}
	if c.Dashboard.SavingsRate < 0 || c.Dashboard.SavingsRate > 1 {
		return fmt.Errorf("config: DASHBOARD_SAVINGS_RATE debe estar entre 0 y 1")
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("config: HTTP_PORT inválido")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
			if err != nil {
				return def
			}
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
