package webprofile

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/podworks/profiled/internal/service/pod"
)

// imageExtensions maps recognized image subtypes to file extensions.
// Unrecognized subtypes fall back to JPEG.
var imageExtensions = map[string]string{
	"png":     "png",
	"jpeg":    "jpg",
	"jpg":     "jpg",
	"gif":     "gif",
	"webp":    "webp",
	"svg+xml": "svg",
}

// storePhoto decodes a base64 image data URI, stores the bytes under the
// identity's pod root, and returns the new resource URL.
func (m *Manager) storePhoto(ctx context.Context, webID, dataURI string) (string, error) {
	contentType, extension, data, err := decodeImageDataURI(dataURI)
	if err != nil {
		return "", &ValidationError{Messages: []string{"photo data URI could not be decoded"}}
	}

	path := fmt.Sprintf("%sphoto-%s.%s", podRoot(webID), uuid.NewString(), extension)
	if err := m.store.Set(ctx, path, &pod.Representation{ContentType: contentType, Data: data}); err != nil {
		return "", err
	}
	return path, nil
}

// decodeImageDataURI splits "data:image/<subtype>;base64,<payload>" into a
// content type, a file extension, and the decoded bytes.
func decodeImageDataURI(dataURI string) (contentType, extension string, data []byte, err error) {
	meta, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return "", "", nil, fmt.Errorf("malformed data URI")
	}
	subtype := strings.TrimSuffix(strings.TrimPrefix(meta, "data:image/"), ";base64")

	extension, recognized := imageExtensions[subtype]
	if recognized {
		contentType = "image/" + subtype
	} else {
		contentType = "image/jpeg"
		extension = "jpg"
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", nil, err
	}
	return contentType, extension, data, nil
}

// podRoot derives the identity's pod root from the WebID origin.
func podRoot(webID string) string {
	u, err := url.Parse(webID)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "/"
	}
	return u.Scheme + "://" + u.Host + "/"
}
