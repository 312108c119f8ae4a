// Package service holds the application logic used by the HTTP handlers
package service

import (
	"bitwise74/visitor-api/internal/metrics"
	"bitwise74/visitor-api/internal/model"
	"bitwise74/visitor-api/internal/store"
	"bitwise74/visitor-api/pkg/agent"
	"bitwise74/visitor-api/pkg/geoip"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type VisitorLogger struct {
	Store store.VisitorStore
	Geo   geoip.Locator
}

func NewVisitorLogger(s store.VisitorStore, geo geoip.Locator) *VisitorLogger {
	if geo == nil {
		geo = geoip.Noop{}
	}

	return &VisitorLogger{Store: s, Geo: geo}
}

// Describe derives a visitor record from the client IP and User-Agent header.
// Missing data is replaced with fallback labels, it never fails.
func (l *VisitorLogger) Describe(ip, userAgent string) *model.Visitor {
	if ip == "" {
		ip = model.FallbackIP
	}

	ua := agent.Parse(userAgent)

	v := &model.Visitor{
		IP:      ip,
		Country: model.FallbackUnknown,
		City:    model.FallbackUnknown,
		Device:  ua.Device,
		Browser: ua.Browser,
		OS:      ua.OS,
	}

	loc, ok := l.Geo.Locate(ip)
	if !ok {
		metrics.GeoLookupMisses.Inc()
		return v
	}

	if loc.Country != "" {
		v.Country = loc.Country
	}
	if loc.City != "" {
		v.City = loc.City
	}

	return v
}

// Log describes and persists a single page view
func (l *VisitorLogger) Log(ctx context.Context, ip, userAgent string) (*model.Visitor, error) {
	v := l.Describe(ip, userAgent)

	if err := l.Store.Insert(ctx, v); err != nil {
		metrics.VisitorLogFailures.Inc()
		return nil, fmt.Errorf("failed to persist visitor, %w", err)
	}

	metrics.VisitorsLogged.WithLabelValues(v.Device).Inc()
	zap.L().Debug("Visitor logged",
		zap.String("country", v.Country),
		zap.String("device", v.Device),
		zap.String("browser", v.Browser),
	)

	return v, nil
}

// Stats returns every stored record, newest first
func (l *VisitorLogger) Stats(ctx context.Context) ([]model.Visitor, error) {
	start := time.Now()
	defer func() { metrics.StatsQueryDuration.Observe(time.Since(start).Seconds()) }()

	visitors, err := l.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visitors, %w", err)
	}

	return visitors, nil
}
