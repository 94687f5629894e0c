package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"limelight/models"
	"limelight/services/gallery"
	"limelight/services/media"

	"github.com/gorilla/mux"
)

type galleryService interface {
	Images() []models.GalleryImage
	Favorites() []models.GalleryImage
	Refresh() error
	Register(imageURL string, providerID models.ProviderID) error
	UpdateFavorites(imageIDs []string) error
	ToggleFavorite(imageID string) error
	Delete(providerID models.ProviderID) error
}

var _ galleryService = (*gallery.Service)(nil)

type mediaUploader interface {
	Upload(path string) (media.Asset, error)
}

var _ mediaUploader = (*media.Uploader)(nil)

// GalleryHandler exposes the image collection. Upload is two-phase behind a
// single endpoint: the file goes to the media host first, then the hosted
// asset is registered against the website.
type GalleryHandler struct {
	Service  galleryService
	Uploader mediaUploader
}

func NewGalleryHandler(service galleryService, uploader mediaUploader) *GalleryHandler {
	return &GalleryHandler{Service: service, Uploader: uploader}
}

func galleryStatus(err error) int {
	switch {
	case errors.Is(err, gallery.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, gallery.ErrNoWebsiteSelected):
		return http.StatusPreconditionFailed
	case errors.Is(err, gallery.ErrFavoriteLimit):
		return http.StatusConflict
	case errors.Is(err, gallery.ErrIncompleteAsset):
		return http.StatusBadRequest
	case errors.Is(err, media.ErrFileTooLarge), errors.Is(err, media.ErrNotAnImage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Images())
}

func (h *GalleryHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Favorites())
}

func (h *GalleryHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Refresh(); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Images())
}

// Upload runs both phases: ship the local file to the media host, then
// register the hosted asset.
func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Path string `json:"path"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Path) == "" {
		http.Error(w, "file path is required", http.StatusBadRequest)
		return
	}

	asset, err := h.Uploader.Upload(body.Path)
	if err != nil {
		http.Error(w, err.Error(), galleryStatus(err))
		return
	}

	if err := h.Service.Register(asset.URL, asset.ProviderID); err != nil {
		http.Error(w, err.Error(), galleryStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(h.Service.Images())
}

func (h *GalleryHandler) UpdateFavorites(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ImageIDs []string `json:"imageIds"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateFavorites(body.ImageIDs); err != nil {
		http.Error(w, err.Error(), galleryStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Favorites())
}

func (h *GalleryHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := strings.TrimSpace(vars["imageID"])
	if id == "" {
		http.Error(w, "image id is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.ToggleFavorite(id); err != nil {
		http.Error(w, err.Error(), galleryStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Favorites())
}

// Delete removes an asset by its media-host provider id, never the database
// id.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID := strings.TrimSpace(vars["providerID"])
	if providerID == "" {
		http.Error(w, "provider id is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(models.ProviderID(providerID)); err != nil {
		http.Error(w, err.Error(), galleryStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Images())
}
