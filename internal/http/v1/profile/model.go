package profile

import (
	profilerec "github.com/podworks/profiled/internal/profile"
)

// View represents the authenticated user's WebID profile response.
type View struct {
	WebID   string            `json:"webId"   doc:"WebID of the linked identity" example:"https://alice.example/profile/card#me"`
	Profile profilerec.Record `json:"profile" doc:"Profile record extracted from the WebID document"`
}
