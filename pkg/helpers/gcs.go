package helpers

import (
	"context"
	"io"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// avatarCacheControl lets browsers cache avatars briefly; a re-upload under
// the same name replaces the object in place.
const avatarCacheControl = "public, max-age=300"

// NewGCSClient builds a storage client from GCS_CREDENTIALS_JSON, which may
// hold either inline service-account JSON or a path to it. Empty means ADC.
func NewGCSClient(ctx context.Context, creds string) (*storage.Client, error) {
	creds = strings.TrimSpace(creds)
	switch {
	case creds == "":
		return storage.NewClient(ctx)
	case inlineCredentials(creds):
		return storage.NewClient(ctx, option.WithCredentialsJSON([]byte(creds)))
	default:
		return storage.NewClient(ctx, option.WithCredentialsFile(creds))
	}
}

func inlineCredentials(creds string) bool {
	return strings.HasPrefix(creds, "{")
}

// UploadObject writes an avatar to bucket/objectPath and returns its public URL.
func UploadObject(ctx context.Context, client *storage.Client, bucket, objectPath, contentType string, r io.Reader) (string, error) {
	w := client.Bucket(bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = avatarCacheControl
	// avatars are small; send them in a single request
	w.ChunkSize = 0
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", errors.Wrapf(err, "write gs://%s/%s", bucket, objectPath)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "finalize gs://%s/%s", bucket, objectPath)
	}
	return PublicURL(bucket, objectPath), nil
}

// PublicURL is the anonymous-read URL of an object. Path segments are escaped
// so sanitized names with spaces or unicode fallbacks still resolve.
func PublicURL(bucket, objectPath string) string {
	segs := strings.Split(objectPath, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return "https://storage.googleapis.com/" + bucket + "/" + strings.Join(segs, "/")
}
