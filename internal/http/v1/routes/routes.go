// Package routes wires versioned API handlers onto the huma router.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/podworks/profiled/internal/http/v1/profile"
	"github.com/podworks/profiled/internal/platform/auth"
	"github.com/podworks/profiled/internal/service/webprofile"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	profileService webprofile.Service,
) {
	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewMiddleware(api, verifier))

	profile.Register(api, profileService)
}
