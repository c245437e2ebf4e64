package api

import (
	"errors"
	"log/slog"
	"net/http"

	"posts-api/internal/api/shared"
	"posts-api/internal/domain"
	"posts-api/internal/store"
)

// UserHandler handles user CRUD requests.
type UserHandler struct {
	userStore store.UserStore
	postStore store.PostStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, postStore store.PostStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		userStore: userStore,
		postStore: postStore,
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Get handles GET /users/{id}. The user's posts are attached via an explicit
// ownership query.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, userNotFoundMessage(id))
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	posts, err := h.postStore.ListByUser(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	user.Posts = posts

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user := domain.User{Name: req.Name, Email: req.Email}
	if req.ID != nil {
		user.ID = *req.ID
	}

	if err := h.userStore.Create(r.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			shared.RespondWithError(w, r, http.StatusConflict, "duplicate id, choose another")
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Update handles PUT /users/{id}. Absent fields keep their stored values.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.Update(r.Context(), id, store.UserPatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, userNotFoundMessage(id))
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}. Users that still own posts cannot be
// deleted; that case reports a conflict rather than orphaning foreign keys.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r)
	if !ok {
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, userNotFoundMessage(id))
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
