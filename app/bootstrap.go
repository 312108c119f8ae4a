package app

import (
	"bitwise74/visitor-api/db"
	"bitwise74/visitor-api/internal"
	"bitwise74/visitor-api/internal/store"
	"bitwise74/visitor-api/pkg/geoip"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Server bundles the router with the dependencies that must be released on
// shutdown
type Server struct {
	Router *gin.Engine
	Deps   *internal.Deps
}

// New opens the configured store and geo database and builds the router.
// A missing geo database is not fatal, lookups then fall back to Unknown.
func New(ctx context.Context) (*Server, error) {
	s, err := openStore(ctx)
	if err != nil {
		return nil, err
	}

	var geo geoip.Locator = geoip.Noop{}

	path := viper.GetString("geoip.city_db")
	if svc, err := geoip.NewService(path); err != nil {
		zap.L().Warn("GeoIP database unavailable, locations will be Unknown", zap.String("path", path), zap.Error(err))
	} else {
		geo = svc
	}

	secret := viper.GetString("stats.jwt_secret")
	if secret == "" {
		zap.L().Warn("STATS_JWT_SECRET is not set, /api/visitor-stats is publicly readable")
	}

	d := internal.NewDeps(s, geo)
	router := NewRouter(d, RouterConfig{
		CORSOrigins:       corsOrigins(),
		StaticDir:         viper.GetString("static.dir"),
		RateLimit:         viper.GetInt("security.rate_limit"),
		StatsSecret:       secret,
		SceneCacheSeconds: viper.GetInt("scene.cache_seconds"),
	})

	return &Server{
		Router: router,
		Deps:   d,
	}, nil
}

func (s *Server) Close(ctx context.Context) {
	s.Deps.Close(ctx)
}

func openStore(ctx context.Context) (store.VisitorStore, error) {
	driver := viper.GetString("database.driver")
	uri := viper.GetString("database.uri")

	switch driver {
	case db.DriverMongo:
		c, err := db.NewMongo(ctx, uri, viper.GetString("database.name"))
		if err != nil {
			return nil, err
		}

		zap.L().Info("MongoDB connected", zap.String("collection", c.Name()))
		return store.NewMongo(c), nil
	default:
		conn, err := db.NewSQL(driver, uri)
		if err != nil {
			return nil, err
		}

		zap.L().Info("SQL database ready", zap.String("driver", driver))
		return store.NewSQL(conn), nil
	}
}

func corsOrigins() []string {
	origins := []string{}

	for _, o := range viper.GetStringSlice("host.cors") {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}

	return origins
}
