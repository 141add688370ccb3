package profile

// ViewGetInput for GET /profile (no body needed)
type ViewGetInput struct{}

// ProfilePutInput for PUT /profile. The body is passed through to the
// profile service unparsed so that shape errors are reported together
// with field-level validation errors.
type ProfilePutInput struct {
	RawBody []byte `contentType:"application/json"`
}
