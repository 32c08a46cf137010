package deps

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pindrop/pindrop/internal/bridge"
	"github.com/pindrop/pindrop/internal/clipboard"
	"github.com/pindrop/pindrop/internal/index"
	"github.com/pindrop/pindrop/internal/ingest"
	"github.com/pindrop/pindrop/internal/intent"
	"github.com/pindrop/pindrop/internal/logger"
	"github.com/pindrop/pindrop/internal/tables"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time // for testing, defaults to time.Now
	AllowedHosts  []string         // Host headers allowed to access the server
	AllowedCIDRS  []string         // IPs allowed to access the API
	TrustProxy    bool             // true if running behind a trusted reverse proxy
	RedisClient   *redis.Client    // Redis client connection
	MemoryIndex   *index.MemoryIndex
	Tables        *tables.Provider            // live routing-tables snapshot
	Bridge        bridge.Bridge               // native gateway client
	Ingestor      *ingest.Ingestor            // shared-content ingestion state machine
	Clipboard     *clipboard.Detector         // clipboard URL detector
	IntentBuilder *intent.Builder             // launch directive builder
	TablesFile    string                      // path to the tables file ("" = built-ins only)
	ReloadTrigger chan struct{}               // channel to trigger manual tables reload (nil if no file)
	InlineMax     int64                       // inline byte payload ceiling
	GatewayPing   func(context.Context) error // probes native gateway reachability
}
