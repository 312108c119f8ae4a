// Package agent turns raw User-Agent headers into the labels stored on a
// visitor record
package agent

import (
	"bitwise74/visitor-api/internal/model"

	"github.com/mileusna/useragent"
)

const (
	DeviceMobile = "mobile"
	DeviceTablet = "tablet"
)

type Info struct {
	Device  string
	Browser string
	OS      string
}

// Parse never fails. Anything the parser can't recognize is replaced with
// the documented fallback labels.
func Parse(raw string) Info {
	ua := useragent.Parse(raw)

	info := Info{
		Device:  model.FallbackDevice,
		Browser: orUnknown(ua.Name),
		OS:      orUnknown(ua.OS),
	}

	switch {
	case ua.Tablet:
		info.Device = DeviceTablet
	case ua.Mobile:
		info.Device = DeviceMobile
	}

	return info
}

func orUnknown(s string) string {
	if s == "" {
		return model.FallbackUnknown
	}

	return s
}
