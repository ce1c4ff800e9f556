package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Application configuration
	SiteConfig        string
	Port              string
	HarvestInterval   int
	EnrichConcurrency int
	Clear             bool

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
