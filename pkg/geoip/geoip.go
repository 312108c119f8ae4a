// Package geoip resolves IP addresses to a coarse location using a MaxMind
// City database
package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

type Location struct {
	Country string // ISO country code
	City    string
}

// Locator looks up the location of an IP. ok is false when nothing useful
// is known about the address, for example loopback or private ranges.
type Locator interface {
	Locate(ip string) (loc Location, ok bool)
}

type Service struct {
	cityReader *geoip2.Reader
}

// NewService opens the City database found at cityDBPath
func NewService(cityDBPath string) (*Service, error) {
	r, err := geoip2.Open(cityDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open city database, %w", err)
	}

	return &Service{cityReader: r}, nil
}

func (s *Service) Close() error {
	if s.cityReader == nil {
		return nil
	}

	return s.cityReader.Close()
}

func (s *Service) Locate(ipAddress string) (Location, bool) {
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return Location{}, false
	}

	record, err := s.cityReader.City(ip)
	if err != nil {
		return Location{}, false
	}

	loc := Location{
		Country: record.Country.IsoCode,
		City:    record.City.Names["en"],
	}

	return loc, loc.Country != "" || loc.City != ""
}

// Noop is used when no database is configured. Every lookup misses.
type Noop struct{}

func (Noop) Locate(string) (Location, bool) { return Location{}, false }

// Static answers from a fixed table, handy for tests and local development
type Static map[string]Location

func (s Static) Locate(ip string) (Location, bool) {
	loc, ok := s[ip]
	return loc, ok
}
