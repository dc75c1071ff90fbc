// Package config holds the runtime settings of the survey client: the remote
// endpoint, timing, the local cache location and the fixed category
// enumerations the aggregation and export layers are built around.
package config

import "time"

// Reasons are the fixed usage-reason answers, exactly as they appear on the
// survey form and in the remote spreadsheet.
type Reasons struct {
	MBData   string `json:"mb_data"`
	SocialAd string `json:"social_ad"`
	Both     string `json:"both"`
}

// ReasonMarkers are the substrings the dashboard counts by. An entry whose
// reason is the compound Both value matches the Minutes/Data and Ad markers
// at the same time.
type ReasonMarkers struct {
	Minutes string `json:"minutes"`
	Data    string `json:"data"`
	Ad      string `json:"ad"`
}

// Config holds runtime settings for the survey CLI.
type Config struct {
	// EndpointURL is the Google Apps Script web app the entries live in.
	EndpointURL string

	// RefreshInterval is how often the background refresh pulls the remote
	// collection. RequestTimeout bounds a single fetch or submit.
	RefreshInterval time.Duration
	RequestTimeout  time.Duration

	// CacheKey and CacheDSN locate the durable local copy of the collection.
	CacheKey string
	CacheDSN string

	// ExportDir is where xlsx reports are written.
	ExportDir string

	Professions []string
	Reasons     Reasons
	Markers     ReasonMarkers

	// Phone prefixes stripped when comparing numbers for duplicates.
	PhoneCountryCode string
	PhoneTrunkPrefix string
}

// LoadDefaults populates c with the values the survey shipped with.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "https://script.google.com/macros/s/AKfycbzVBtlDbLdAmpDpkSary5JSd_ZVuVh30S1OTqRt7duntTGokGMQpVVbMzyj_PD5XJnaCg/exec"
	c.RefreshInterval = 30 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.CacheKey = "surveyData"
	c.CacheDSN = "survey.db"
	c.ExportDir = "."
	c.Professions = []string{
		"ডাক্তার",
		"ইঞ্জিনিয়ার",
		"ছাত্র",
		"চাকুরিজীবি",
		"ব্যবসায়ী",
		"পথচারী",
	}
	c.Reasons = Reasons{
		MBData:   "মিনিট/ডাটা দেখা বা ক্রয় করার জন্য",
		SocialAd: "সোশ্যাল এড দেখার জন্য",
		Both:     "উভয়",
	}
	c.Markers = ReasonMarkers{
		Minutes: "মিনিট",
		Data:    "ডাটা",
		Ad:      "এড",
	}
	c.PhoneCountryCode = "880"
	c.PhoneTrunkPrefix = "88"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
