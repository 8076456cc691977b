package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/brainstorm/internal/availability"
	"github.com/MrSnakeDoc/brainstorm/internal/dictionary"
	"github.com/MrSnakeDoc/brainstorm/internal/favorites"
	"github.com/MrSnakeDoc/brainstorm/internal/generator"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
	"github.com/MrSnakeDoc/brainstorm/internal/scheduler"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time // for testing, defaults to time.Now
	AllowedHosts    []string         // Host headers allowed to access the server
	AllowedCIDRS    []string         // IPs allowed to access the ops endpoints
	TrustProxy      bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateLimitBurst  int              // per-client burst on generate/availability
	RateLimitPerMin int              // per-client refill rate

	DefaultPageSize int                           // pageSize used when a request omits it
	Generator       *generator.Generator          // domain candidate pages
	Dictionary      *dictionary.Holder            // current word list snapshot
	Availability    *availability.Checker         // registrar lookups
	Favorites       *favorites.Service            // saved domains
	RedisClient     *redis.Client                 // nil when favorites are kept in memory
	ReloadTrigger   chan struct{}                 // Channel to trigger a manual dictionary reload
	ReloadStatus    func() scheduler.ReloadStatus // last dictionary reload outcome (optional)
}
