package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"limelight/models"
	"limelight/services/themes"

	"github.com/gorilla/mux"
)

type themesService interface {
	Current() models.Theme
	IsDark() bool
	ForTemplate(templateID int) models.Theme
	IsDarkTemplate(templateID int) bool
}

var _ themesService = (*themes.Service)(nil)

// ThemesHandler resolves colour palettes for the shell.
type ThemesHandler struct {
	Service themesService
}

func NewThemesHandler(service themesService) *ThemesHandler {
	return &ThemesHandler{Service: service}
}

type themeView struct {
	Theme  models.Theme `json:"theme"`
	IsDark bool         `json:"isDark"`
}

func (h *ThemesHandler) Current(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(themeView{h.Service.Current(), h.Service.IsDark()})
}

func (h *ThemesHandler) ForTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["templateID"])
	if err != nil {
		http.Error(w, "template id must be an integer", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(themeView{h.Service.ForTemplate(id), h.Service.IsDarkTemplate(id)})
}
