package config

// SiteConfig describes the harvested site: where its day listing lives and
// which markup elements hold the article metadata and body.
type SiteConfig struct {
	Site      SiteInfo      `yaml:"site"`
	Selectors SiteSelectors `yaml:"selectors"`
	Settings  SiteSettings  `yaml:"settings"`
}

// SiteInfo contains the site addressing information
type SiteInfo struct {
	Name       string `yaml:"name"`
	Origin     string `yaml:"origin"`
	ListingURL string `yaml:"listing_url"`
}

// SiteSelectors contains the CSS selectors used while scraping
type SiteSelectors struct {
	Entry     string `yaml:"entry"`
	TitleLink string `yaml:"title_link"`
	Time      string `yaml:"time"`
	Body      string `yaml:"body"`
}

// SiteSettings contains scraping behavior settings
type SiteSettings struct {
	DateFormat  string `yaml:"date_format"`
	TimeFormat  string `yaml:"time_format"`
	WindowHours int    `yaml:"window_hours"`
	Timeout     int    `yaml:"timeout"` // seconds
}
