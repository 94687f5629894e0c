// Package media is the phase-one upload client for the external media host:
// it ships the binary and hands back the hosted url plus the provider id
// that later keys deletion. Registration against the website (phase two)
// belongs to services/gallery.
package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"limelight/models"
)

const defaultHostURL = "https://media.golimelight.com"

// maxUploadBytes caps uploads at 10MB, checked before any bytes leave the
// device.
const maxUploadBytes = 10 << 20

var (
	ErrFileTooLarge       = errors.New("image exceeds the 10MB upload limit")
	ErrNotAnImage         = errors.New("file is not a supported image type")
	ErrIncompleteResponse = errors.New("media host response missing url or public_id")
)

// Asset is the hosted file record returned by the media host. Both fields
// are mandatory: an asset missing either must never be registered.
type Asset struct {
	URL        string            `json:"url"`
	ProviderID models.ProviderID `json:"public_id"`
}

// Uploader ships image files to the media host.
type Uploader struct {
	httpClient *http.Client
	hostURL    string
	fs         afero.Fs
}

// NewUploader creates an uploader against the given host; empty selects
// production.
func NewUploader(hostURL string) *Uploader {
	return NewUploaderWithFs(hostURL, afero.NewOsFs())
}

// NewUploaderWithFs allows tests to substitute an in-memory filesystem.
func NewUploaderWithFs(hostURL string, fs afero.Fs) *Uploader {
	if strings.TrimSpace(hostURL) == "" {
		hostURL = defaultHostURL
	}
	return &Uploader{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		hostURL:    strings.TrimRight(hostURL, "/") + "/",
		fs:         fs,
	}
}

// Upload reads the file at path, validates size and type, and posts it as
// multipart form data. The returned asset always carries both url and
// provider id.
func (u *Uploader) Upload(path string) (Asset, error) {
	info, err := u.fs.Stat(path)
	if err != nil {
		return Asset{}, fmt.Errorf("stat upload file: %w", err)
	}
	if info.Size() > maxUploadBytes {
		return Asset{}, ErrFileTooLarge
	}

	file, err := u.fs.Open(path)
	if err != nil {
		return Asset{}, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return Asset{}, fmt.Errorf("read upload file: %w", err)
	}
	if len(data) > maxUploadBytes {
		return Asset{}, ErrFileTooLarge
	}

	kind := mimetype.Detect(data)
	if !strings.HasPrefix(kind.String(), "image/") {
		return Asset{}, fmt.Errorf("%w: detected %s", ErrNotAnImage, kind.String())
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path)))
	header.Set("Content-Type", kind.String())
	part, err := writer.CreatePart(header)
	if err != nil {
		return Asset{}, fmt.Errorf("create multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return Asset{}, fmt.Errorf("write multipart: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Asset{}, fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, u.hostURL, &body)
	if err != nil {
		return Asset{}, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("media host request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return Asset{}, fmt.Errorf("media host upload failed: %s - %s", resp.Status, string(respBody))
	}

	var asset Asset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		return Asset{}, fmt.Errorf("decode upload response: %w", err)
	}
	if asset.URL == "" || asset.ProviderID == "" {
		return Asset{}, ErrIncompleteResponse
	}
	return asset, nil
}
