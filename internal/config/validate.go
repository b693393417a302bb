package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}

	if err := c.Retell.validate(); err != nil {
		return fmt.Errorf("retell: %w", err)
	}
	if c.Sync.Enabled {
		if err := c.Retell.RequireAPIKey(); err != nil {
			return fmt.Errorf("retell: %w (sync.enabled is true)", err)
		}
	}
	if err := c.Sync.validate(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if err := c.Trash.validate(); err != nil {
		return fmt.Errorf("trash: %w", err)
	}
	if err := c.Preview.validate(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

// RequireAPIKey reports an error when no API key is configured. Commands that
// talk to the call platform check it; the rest start without one.
func (r *RetellConfig) RequireAPIKey() error {
	if strings.TrimSpace(r.APIKey) == "" {
		return fmt.Errorf("api_key is required")
	}
	return nil
}

func (r *RetellConfig) validate() error {
	u, err := url.Parse(r.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", r.BaseURL)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", r.Timeout)
	}
	return nil
}

func (s *SyncConfig) validate() error {
	if _, err := cron.ParseStandard(s.Schedule); err != nil {
		return fmt.Errorf("schedule %q: %w", s.Schedule, err)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", s.Timeout)
	}
	return nil
}

func (t *TrashConfig) validate() error {
	if t.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", t.RetentionDays)
	}
	if _, err := cron.ParseStandard(t.SweepSchedule); err != nil {
		return fmt.Errorf("sweep_schedule %q: %w", t.SweepSchedule, err)
	}
	return nil
}

func (p *PreviewConfig) validate() error {
	if p.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be > 0 (got %d)", p.MaxRows)
	}
	if p.MaxCols <= 0 {
		return fmt.Errorf("max_cols must be > 0 (got %d)", p.MaxCols)
	}
	if p.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", p.MaxUploadBytes)
	}
	return nil
}
