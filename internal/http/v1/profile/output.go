package profile

import (
	profilerec "github.com/podworks/profiled/internal/profile"
)

// ViewGetOutput for GET /profile
type ViewGetOutput struct {
	Body View
}

// ProfilePutOutput for PUT /profile
type ProfilePutOutput struct {
	Body profilerec.Record
}
