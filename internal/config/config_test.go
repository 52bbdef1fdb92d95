package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_DevDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv %q", cfg.AppEnv)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DB_URL default in dev, got %q", cfg.DBURL)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr %q", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected CacheTTL %s", cfg.CacheTTL)
	}
	if cfg.PolygonBaseURL != "https://api.polygon.io" {
		t.Fatalf("unexpected PolygonBaseURL %q", cfg.PolygonBaseURL)
	}
	if cfg.QuoteWorkers != 4 {
		t.Fatalf("unexpected QuoteWorkers %d", cfg.QuoteWorkers)
	}
	if cfg.IsProd() {
		t.Fatalf("dev config must not report prod")
	}
}

func TestLoad_ProdRequiresSecrets(t *testing.T) {
	t.Run("missing polygon api key", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("DB_URL", "postgres://localhost/tickerdraft")
		t.Setenv("CRON_SECRET", "s3cret")
		t.Setenv("POLYGON_API_KEY", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error without POLYGON_API_KEY in prod")
		}
	})

	t.Run("missing cron secret", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("DB_URL", "postgres://localhost/tickerdraft")
		t.Setenv("POLYGON_API_KEY", "key")
		t.Setenv("CRON_SECRET", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error without CRON_SECRET in prod")
		}
	})

	t.Run("missing db url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("POLYGON_API_KEY", "key")
		t.Setenv("CRON_SECRET", "s3cret")
		t.Setenv("DB_URL", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error without DB_URL in prod")
		}
	})

	t.Run("complete prod config", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("DB_URL", "postgres://localhost/tickerdraft")
		t.Setenv("POLYGON_API_KEY", "key")
		t.Setenv("CRON_SECRET", "s3cret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.IsProd() {
			t.Fatalf("expected prod config")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("POLYGON_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unparseable POLYGON_TIMEOUT")
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.tickerdraft.io, https://staging.tickerdraft.io")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://app.tickerdraft.io" {
		t.Fatalf("unexpected first origin %q", cfg.CORSAllowedOrigins[0])
	}
}
