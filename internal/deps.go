package internal

import (
	"bitwise74/visitor-api/internal/service"
	"bitwise74/visitor-api/internal/store"
	"bitwise74/visitor-api/pkg/geoip"
	"context"

	"go.uber.org/zap"
)

type Deps struct {
	Store    store.VisitorStore
	Geo      geoip.Locator
	Visitors *service.VisitorLogger
}

func NewDeps(s store.VisitorStore, geo geoip.Locator) *Deps {
	if geo == nil {
		geo = geoip.Noop{}
	}

	return &Deps{
		Store:    s,
		Geo:      geo,
		Visitors: service.NewVisitorLogger(s, geo),
	}
}

// Close releases the store connection and the geo database
func (d *Deps) Close(ctx context.Context) {
	if err := d.Store.Close(ctx); err != nil {
		zap.L().Error("Failed to close visitor store", zap.Error(err))
	}

	if svc, ok := d.Geo.(*geoip.Service); ok {
		if err := svc.Close(); err != nil {
			zap.L().Error("Failed to close GeoIP database", zap.Error(err))
		}
	}
}
