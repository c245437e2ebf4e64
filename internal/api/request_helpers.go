package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"posts-api/internal/api/shared"
)

// getPathID extracts an integer id from the URL path. It writes a 400
// response and returns false when the parameter is missing or not a number.
func getPathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "id is required")
		return 0, false
	}

	id, err := strconv.ParseInt(pathID, 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("invalid id: '%s'", pathID))
		return 0, false
	}

	return id, true
}

// decodeAndValidate decodes the JSON request body into v and validates it.
// It writes a 400 response and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}
	return true
}

// userNotFoundMessage matches the wording clients depend on for missing
// users, including users referenced by a post create.
func userNotFoundMessage(id int64) string {
	return fmt.Sprintf("Could not find user with id: '%d'", id)
}

func postNotFoundMessage(id int64) string {
	return fmt.Sprintf("Could not find post with id: '%d'", id)
}

// respondWithMappedError translates err through the error mapping tables and
// writes the response, routing 401s through the single bearer-challenge
// response.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusUnauthorized {
		shared.RespondWithUnauthorized(w, r)
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
