// Package api exposes the blog admin JSON contract over chi. Routing and
// static serving of the page shell belong to the executable; only the JSON
// endpoints live here.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// Handler handles the blog API endpoints using pkg/simpleblog
type Handler struct {
	service simpleblog.Service
}

// NewHandler creates a new blog API handler
func NewHandler(service simpleblog.Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the blog API endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/posts", h.ListPosts)
	r.Post("/save-post", h.SavePost)
	r.Post("/delete-post", h.DeletePost)
	r.Post("/upload-image", h.UploadImage)
	r.Post("/auth", h.Auth)
	return r
}

// PostsResponse is the response body for listing posts
type PostsResponse struct {
	Posts []simpleblog.Post `json:"posts"`
}

// SaveResponse is the response body for save and delete operations
type SaveResponse struct {
	OK       bool              `json:"ok"`
	Posts    []simpleblog.Post `json:"posts"`
	Warnings []string          `json:"warnings,omitempty"`
}

// UploadResponse is the response body for an image upload
type UploadResponse struct {
	OK        bool   `json:"ok"`
	ImagePath string `json:"imagePath"`
}

// ErrorResponse is the envelope for every failure
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// SavePostRequest is the request body for saving a post
type SavePostRequest struct {
	Post  simpleblog.RawPost `json:"post"`
	Index *int               `json:"index"`
}

// DeletePostRequest is the request body for deleting a post
type DeletePostRequest struct {
	Index *int `json:"index"`
}

// UploadImageRequest is the request body for uploading an image
type UploadImageRequest struct {
	DataURL  string `json:"dataUrl"`
	Filename string `json:"filename"`
}

// ListPosts returns the full persisted collection
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPosts(r.Context())
	if err != nil {
		slog.Error("Failed to list posts", "error", err)
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, PostsResponse{Posts: posts})
}

// SavePost creates or updates a post and returns the updated collection
func (h *Handler) SavePost(w http.ResponseWriter, r *http.Request) {
	var req SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode save request", "error", err)
		renderBadRequest(w, r, "invalid request body")
		return
	}

	result, err := h.service.SavePost(r.Context(), simpleblog.SavePostRequest{
		Post:  req.Post,
		Index: req.Index,
	})
	if err != nil {
		slog.Error("Failed to save post", "error", err)
		renderError(w, r, err)
		return
	}

	slog.Info("Post saved", "posts", len(result.Posts), "warnings", len(result.Warnings))
	render.JSON(w, r, SaveResponse{OK: true, Posts: result.Posts, Warnings: result.Warnings})
}

// DeletePost removes a post by index and returns the updated collection
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	var req DeletePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode delete request", "error", err)
		renderBadRequest(w, r, "invalid request body")
		return
	}

	result, err := h.service.DeletePost(r.Context(), simpleblog.DeletePostRequest{Index: req.Index})
	if err != nil {
		slog.Error("Failed to delete post", "error", err)
		renderError(w, r, err)
		return
	}

	slog.Info("Post deleted", "posts", len(result.Posts))
	render.JSON(w, r, SaveResponse{OK: true, Posts: result.Posts, Warnings: result.Warnings})
}

// UploadImage stores an uploaded image and returns its public path
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req UploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode upload request", "error", err)
		renderBadRequest(w, r, "invalid request body")
		return
	}

	imagePath, err := h.service.UploadImage(r.Context(), simpleblog.UploadImageRequest{
		DataURL:  req.DataURL,
		Filename: req.Filename,
	})
	if err != nil {
		slog.Error("Failed to upload image", "error", err)
		renderError(w, r, err)
		return
	}

	slog.Info("Image uploaded", "path", imagePath)
	render.JSON(w, r, UploadResponse{OK: true, ImagePath: imagePath})
}

// Auth is a stub; the admin panel is local-only and real authentication is
// out of scope.
func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]bool{"ok": true})
}

func renderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{Error: msg})
}

// renderError maps the library's error taxonomy onto status codes: caller
// mistakes are 400, storage failures 500.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, simpleblog.ErrInvalidPost) ||
		errors.Is(err, simpleblog.ErrInvalidIndex) ||
		errors.Is(err, simpleblog.ErrUnsupportedImage) {
		status = http.StatusBadRequest
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}
