package configs

import (
	"net/url"
	"time"
)

// Source kinds accepted by Source.Kind.
const (
	SourceAPI      = "api"
	SourcePostgres = "postgres"
)

// Source configures where campaigns and the product catalog are read
// from. Kind "api" reads the remote campaign API at APIURL; kind "postgres"
// reads the tables created by the migrations.
type Source struct {
	Kind string `env:"KIND" envDefault:"api"`

	// APIURL is the base URL of the campaign API. CampaignsPath and
	// ProductsPath are joined to it.
	APIURL        url.URL `env:"API_URL" envDefault:"http://localhost:8081/api"`
	CampaignsPath string  `env:"CAMPAIGNS_PATH" envDefault:"/campaigns/list"`
	ProductsPath  string  `env:"PRODUCTS_PATH" envDefault:"/articles/subjname"`

	// Timeout bounds a single API request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// RefreshInterval controls how often the sources are reloaded. Zero
	// loads them once at startup.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"1m"`
}
