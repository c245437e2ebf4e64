package api

import (
	"errors"
	"log/slog"
	"net/http"

	"posts-api/internal/api/shared"
	"posts-api/internal/domain"
	"posts-api/internal/store"
)

// PostHandler handles post CRUD requests.
type PostHandler struct {
	postStore store.PostStore
	userStore store.UserStore
	logger    *slog.Logger
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postStore store.PostStore, userStore store.UserStore, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostHandler{
		postStore: postStore,
		userStore: userStore,
		logger:    logger.With(slog.String("component", "post_handler")),
	}
}

// List handles GET /posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postStore.List(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r)
	if !ok {
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, postNotFoundMessage(id))
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// Create handles POST /posts. The owning user must exist; the check runs
// here so the caller gets the user-specific 404 rather than an opaque
// constraint failure. The store's foreign key mapping covers the window
// between this check and the insert.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.userStore.GetByID(r.Context(), req.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, userNotFoundMessage(req.UserID))
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	post := domain.Post{Title: req.Title, Content: req.Content, UserID: req.UserID}
	if req.ID != nil {
		post.ID = *req.ID
	}

	if err := h.postStore.Create(r.Context(), &post); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateID):
			shared.RespondWithError(w, r, http.StatusConflict, "duplicate id, choose another")
		case errors.Is(err, store.ErrUserNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, userNotFoundMessage(req.UserID))
		default:
			respondWithMappedError(w, r, err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, post)
}

// Update handles PUT /posts/{id}. Absent fields keep their stored values;
// ownership is immutable.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := h.postStore.Update(r.Context(), id, store.PostPatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, postNotFoundMessage(id))
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// Delete handles DELETE /posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r)
	if !ok {
		return
	}

	if err := h.postStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, postNotFoundMessage(id))
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
