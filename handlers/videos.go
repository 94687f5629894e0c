package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"limelight/models"
	"limelight/services/videos"
	"limelight/utils/videourl"

	"github.com/gorilla/mux"
)

type videosService interface {
	Videos() []models.Video
	Refresh() error
	Add(video models.Video) error
	Update(video models.Video) error
	Delete(videoID int) error
}

var _ videosService = (*videos.Service)(nil)

// VideosHandler exposes the video collection. List responses are decorated
// with derived thumbnail and embed urls so the shell never parses video urls
// itself.
type VideosHandler struct {
	Service videosService
}

func NewVideosHandler(service videosService) *VideosHandler {
	return &VideosHandler{Service: service}
}

type videoView struct {
	models.Video
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	EmbedURL     string `json:"embed_url,omitempty"`
}

func decorate(list []models.Video) []videoView {
	out := make([]videoView, 0, len(list))
	for _, v := range list {
		out = append(out, videoView{
			Video:        v,
			ThumbnailURL: videourl.Thumbnail(v.VideoURL),
			EmbedURL:     videourl.EmbedURL(v.VideoURL),
		})
	}
	return out
}

func videosStatus(err error) int {
	switch {
	case errors.Is(err, videos.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, videos.ErrNoWebsiteSelected):
		return http.StatusPreconditionFailed
	case errors.Is(err, videos.ErrMissingURL):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *VideosHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(decorate(h.Service.Videos()))
}

func (h *VideosHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Refresh(); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(decorate(h.Service.Videos()))
}

func (h *VideosHandler) Create(w http.ResponseWriter, r *http.Request) {
	var video models.Video
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&video); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.Add(video); err != nil {
		http.Error(w, err.Error(), videosStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(decorate(h.Service.Videos()))
}

func (h *VideosHandler) Update(w http.ResponseWriter, r *http.Request) {
	var video models.Video
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&video); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if video.ID == 0 {
		http.Error(w, "video id is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Update(video); err != nil {
		http.Error(w, err.Error(), videosStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(decorate(h.Service.Videos()))
}

func (h *VideosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["videoID"])
	if err != nil || id <= 0 {
		http.Error(w, "video id must be a positive integer", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		http.Error(w, err.Error(), videosStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(decorate(h.Service.Videos()))
}
