package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	GeocoderNominatim = "nominatim"
	GeocoderORS       = "ors"

	RouterOSRM = "osrm"
	RouterORS  = "ors"

	CacheNone     = "none"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
)

// Config holds process-level settings for the evaluation service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	CountryHint string

	Geocoder           string
	NominatimURL       string
	NominatimUserAgent string

	Router     string
	OSRMURL    string
	ORSURL     string
	ORSAPIKey  string
	ORSProfile string

	WeatherURL    string
	WeatherAPIKey string

	CollaboratorTimeout time.Duration

	GeocodeCache    string
	DatabaseURL     string
	RedisURL        string
	GeocodeCacheTTL time.Duration
}

// Load reads an optional .env file and then the environment.
// A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := getDuration("COLLABORATOR_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	ttl, err := getDuration("GEOCODE_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:     Get("PORT", "8080"),
		AppEnv:   Get("APP_ENV", "development"),
		LogLevel: Get("LOG_LEVEL", "info"),

		CountryHint: Get("COUNTRY_HINT", "India"),

		Geocoder:           strings.ToLower(Get("GEOCODER", GeocoderNominatim)),
		NominatimURL:       Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: Get("NOMINATIM_USER_AGENT", "route-evaluation-service/1.0"),

		Router:     strings.ToLower(Get("ROUTER", RouterOSRM)),
		OSRMURL:    Get("OSRM_URL", "http://router.project-osrm.org"),
		ORSURL:     Get("ORS_URL", "https://api.openrouteservice.org"),
		ORSAPIKey:  strings.TrimSpace(os.Getenv("ORS_API_KEY")),
		ORSProfile: Get("ORS_PROFILE", "driving-car"),

		WeatherURL:    Get("OPENWEATHERMAP_URL", "https://api.openweathermap.org"),
		WeatherAPIKey: strings.TrimSpace(os.Getenv("OPENWEATHERMAP_API_KEY")),

		CollaboratorTimeout: timeout,

		GeocodeCache:    strings.ToLower(Get("GEOCODE_CACHE", CacheNone)),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:        strings.TrimSpace(os.Getenv("REDIS_URL")),
		GeocodeCacheTTL: ttl,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown selector values and selections that lack the
// credentials or URLs they need.
func (c *Config) Validate() error {
	var errs []error

	switch c.Geocoder {
	case GeocoderNominatim:
	case GeocoderORS:
		if c.ORSAPIKey == "" {
			errs = append(errs, errors.New("GEOCODER=ors requires ORS_API_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown GEOCODER %q", c.Geocoder))
	}

	switch c.Router {
	case RouterOSRM:
	case RouterORS:
		if c.ORSAPIKey == "" {
			errs = append(errs, errors.New("ROUTER=ors requires ORS_API_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown ROUTER %q", c.Router))
	}

	switch c.GeocodeCache {
	case CacheNone:
	case CachePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("GEOCODE_CACHE=postgres requires DATABASE_URL"))
		}
	case CacheRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("GEOCODE_CACHE=redis requires REDIS_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown GEOCODE_CACHE %q", c.GeocodeCache))
	}

	if c.CollaboratorTimeout <= 0 {
		errs = append(errs, errors.New("COLLABORATOR_TIMEOUT must be positive"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}
	return d, nil
}
