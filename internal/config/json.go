package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/armanazij/mygp-survey/internal/flagx"
)

// Duration lets JSON specify intervals either as strings like "30s" or as
// integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration value")
	}
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config; zero values leave the defaults in place so
// a config file only needs to list what it overrides.
type JsonConfig struct {
	EndpointURL      string         `json:"endpoint_url"`
	RefreshInterval  Duration       `json:"refresh_interval"`
	RequestTimeout   Duration       `json:"request_timeout"`
	CacheKey         string         `json:"cache_key"`
	CacheDSN         string         `json:"cache_dsn"`
	ExportDir        string         `json:"export_dir"`
	Professions      []string       `json:"professions"`
	Reasons          *Reasons       `json:"reasons"`
	Markers          *ReasonMarkers `json:"reason_markers"`
	PhoneCountryCode string         `json:"phone_country_code"`
	PhoneTrunkPrefix string         `json:"phone_trunk_prefix"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No flag, no JSON. Panics on read or unmarshal
// errors, as a bad config file should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointURL != "" {
		cfg.EndpointURL = jc.EndpointURL
	}
	if jc.RefreshInterval.Duration != 0 {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheKey != "" {
		cfg.CacheKey = jc.CacheKey
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if len(jc.Professions) > 0 {
		cfg.Professions = jc.Professions
	}
	if jc.Reasons != nil {
		cfg.Reasons = *jc.Reasons
	}
	if jc.Markers != nil {
		cfg.Markers = *jc.Markers
	}
	if jc.PhoneCountryCode != "" {
		cfg.PhoneCountryCode = jc.PhoneCountryCode
	}
	if jc.PhoneTrunkPrefix != "" {
		cfg.PhoneTrunkPrefix = jc.PhoneTrunkPrefix
	}
}
