package configuration

import (
	"time"

	"github.com/adampresley/configinator"
	"github.com/joho/godotenv"
)

type Config struct {
	BusyLoopIterations int    `flag:"busyloop" env:"BUSY_LOOP_ITERATIONS" default:"50000000" description:"Number of iterations of the blocking computation run before fetching photos"`
	Host               string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	LoadDelayMs        int    `flag:"loaddelay" env:"LOAD_DELAY_MS" default:"3000" description:"Artificial delay, in milliseconds, before the gallery starts loading"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxLoadWorkers     int    `flag:"maxloadworkers" env:"MAX_LOAD_WORKERS" default:"4" description:"Maximum number of gallery loads running at the same time"`
	PhotosPerPage      int    `flag:"perpage" env:"PHOTOS_PER_PAGE" default:"30" description:"Number of photos requested from the photo API"`
	UnsplashAccessKey  string `flag:"unsplashkey" env:"UNSPLASH_ACCESS_KEY" default:"TsbszjCfuMceKpo90pkigdDRdfLBiWypn0ZjkhBigwU" description:"Unsplash API access key"`
	UnsplashEndpoint   string `flag:"unsplashep" env:"UNSPLASH_ENDPOINT" default:"https://api.unsplash.com/photos" description:"Unsplash photo listing endpoint"`
}

func LoadConfig() Config {
	// A missing .env file is normal outside of local development
	_ = godotenv.Load()

	config := Config{}
	configinator.Behold(&config)
	return config
}

func (c Config) LoadDelay() time.Duration {
	return time.Duration(c.LoadDelayMs) * time.Millisecond
}
