package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"cordelia-backend/internal/domain"
	"cordelia-backend/internal/repository"
	"cordelia-backend/internal/service"
	"cordelia-backend/internal/storage"

	"github.com/gorilla/mux"
)

// InventoryHandler serves the dress inventory endpoints
type InventoryHandler struct {
	inventory service.InventoryService
	images    storage.ImageStorage
	maxUpload int64 // bytes
}

func NewInventoryHandler(inventory service.InventoryService, images storage.ImageStorage, maxUploadMB int64) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		images:    images,
		maxUpload: maxUploadMB << 20,
	}
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, raw)
	}
	return int32(id), nil
}

func queryInt32(r *http.Request, name string) int32 {
	v, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}

type pagedResponse struct {
	Items    any   `json:"items"`
	Total    int32 `json:"total"`
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

func (h *InventoryHandler) CreateDress(w http.ResponseWriter, r *http.Request) {
	var input service.AddDressInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	dress, err := h.inventory.AddDress(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dress)
}

func (h *InventoryHandler) GetDress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	dress, err := h.inventory.GetDress(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dress)
}

func (h *InventoryHandler) DeleteDress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.inventory.DeleteDress(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *InventoryHandler) ListDresses(w http.ResponseWriter, r *http.Request) {
	filter := repository.DressFilter{
		Color:   r.URL.Query().Get("color"),
		Brand:   r.URL.Query().Get("brand"),
		Style:   r.URL.Query().Get("style"),
		Size:    queryInt32(r, "size"),
		MinCost: queryInt32(r, "min_cost"),
		MaxCost: queryInt32(r, "max_cost"),
	}
	page, pageSize := queryInt32(r, "page"), queryInt32(r, "page_size")

	dresses, total, err := h.inventory.ListDresses(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: dresses, Total: total, Page: page, PageSize: pageSize})
}

func (h *InventoryHandler) DressRents(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rents, err := h.inventory.DressRents(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rents)
}

func (h *InventoryHandler) DressMaintenances(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	maintenances, err := h.inventory.DressMaintenances(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, maintenances)
}

func (h *InventoryHandler) DressSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	sale, err := h.inventory.DressSale(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

// UploadImage stores a dress photo and records its key on the dress
func (h *InventoryHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.inventory.GetDress(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	var ext string
	switch r.Header.Get("Content-Type") {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		writeError(w, r, fmt.Errorf("%w: unsupported content type", domain.ErrValidation))
		return
	}

	key := h.images.NewKey(id, ext)
	body := http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := h.images.SaveFile(key, body); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.inventory.SetImagePath(r.Context(), id, key); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_path": key})
}

// DownloadImage streams a dress photo
func (h *InventoryHandler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	dress, err := h.inventory.GetDress(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if dress.ImagePath == nil {
		writeError(w, r, fmt.Errorf("%w: dress %d has no image", domain.ErrNotFound, id))
		return
	}

	file, err := h.images.ReadFile(*dress.ImagePath)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: dress %d image", domain.ErrNotFound, id))
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(*dress.ImagePath) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
