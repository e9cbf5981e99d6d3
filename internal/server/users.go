package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/go-api"

	"github.com/Decentr-net/chronicle/internal/entities"
)

func (s server) searchUsers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users Users SearchUsers
	//
	// Search users by name or email substring. Returns at most 10 users in no particular order.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: query
	//   in: query
	//   required: false
	//   type: string
	// responses:
	//   '200':
	//     description: Users
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/User"

	users, err := s.s.SearchUsers(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeServiceError(w, r, err, "search users")
		return
	}

	out := make([]User, len(users))
	for i, v := range users {
		out[i] = toAPIUser(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) getUserProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id} Users GetUserProfile
	//
	// Get user with profile. Profile has zero values when user hasn't filled it.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: User
	//     schema:
	//       "$ref": "#/definitions/User"
	//   '404':
	//     description: user not found

	u, err := s.s.GetUserProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "get user profile")
		return
	}

	if u == nil {
		api.WriteError(w, http.StatusNotFound, "user not found")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUser(u))
}

func (s server) isFollowing(w http.ResponseWriter, r *http.Request) {
	following, err := s.s.IsFollowing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "check follow")
		return
	}

	api.WriteOK(w, http.StatusOK, FollowResponse{Following: following})
}

func (s server) toggleFollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/{id}/follow Users ToggleFollow
	//
	// Follow the user or stop following.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: follow state
	//     schema:
	//       "$ref": "#/definitions/FollowResponse"
	//   '400':
	//     description: user tries to follow self
	//   '401':
	//     description: not authenticated

	state, err := s.s.ToggleFollow(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "toggle follow")
		return
	}

	api.WriteOK(w, http.StatusOK, FollowResponse{Following: state.Following})
}

func (s server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.UpdateProfile(r.Context(), entities.ProfileInfo{
		Bio:      req.Bio,
		Website:  req.Website,
		Location: req.Location,
		Avatar:   req.Avatar,
	}); err != nil {
		writeServiceError(w, r, err, "update profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) updateUserName(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserNameRequest
	if err := decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.UpdateUserName(r.Context(), req.Name); err != nil {
		writeServiceError(w, r, err, "update user name")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
