// Package handler contains the HTTP handlers for the application.
package handler

import (
	"wayfare/internal/delivery/http/middleware"
	"wayfare/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// currentProfile returns the authenticated principal's persisted profile, or
// nil for anonymous requests.
func currentProfile(c echo.Context) *entity.Profile {
	profile, _ := c.Get(middleware.ProfileKey).(*entity.Profile)

	return profile
}
