/*
Package handler provides HTTP handler functions for the social graph: user
lookup and the friend request lifecycle.

All authorization decisions belong to the social core's guard chain; these
handlers only translate between HTTP and the operation contracts.
*/
package handler

import (
	"net/http"

	"mmserver/internal/pkg/auth/jwt"
	"mmserver/internal/pkg/req"
	"mmserver/internal/pkg/resp"
)

// HandleFindUser looks up a user by exact email for the authenticated caller.
func HandleFindUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")

		profile, cerr := deps.Social.FindUser(r.Context(), jwt.PrincipalEmail(r), email)
		if cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": profile,
		})
	}
}

// HandleGetFriendRequests returns the caller's open requests, grouped into
// sent and received.
func HandleGetFriendRequests(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		box, cerr := deps.Social.FriendRequests(r.Context(), jwt.PrincipalEmail(r))
		if cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		resp.RespondSuccess(w, r, box)
	}
}

type SendFriendRequestInput struct {
	ReceiverID int64 `json:"receiverId"`
}

// HandleSendFriendRequest creates a friend request from the caller to the
// given receiver.
func HandleSendFriendRequest(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SendFriendRequestInput
		if cerr := req.BindJSON(r, &input); cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		created, cerr := deps.Social.SendFriendRequest(r.Context(), jwt.PrincipalEmail(r), input.ReceiverID)
		if cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"friendRequest": created,
		})
	}
}

// HandleAcceptFriendRequest accepts a pending request addressed to the caller.
func HandleAcceptFriendRequest(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, cerr := deps.Social.AcceptFriendRequest(r.Context(), jwt.PrincipalEmail(r), req.IDParam(r, "id"))
		if cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"friendRequest": updated,
		})
	}
}

// HandleRejectFriendRequest rejects a pending request addressed to the caller.
func HandleRejectFriendRequest(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, cerr := deps.Social.RejectFriendRequest(r.Context(), jwt.PrincipalEmail(r), req.IDParam(r, "id"))
		if cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"friendRequest": updated,
		})
	}
}

// HandleCancelFriendRequest deletes a request the caller sent and returns its
// last known values.
func HandleCancelFriendRequest(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, cerr := deps.Social.CancelFriendRequest(r.Context(), jwt.PrincipalEmail(r), req.IDParam(r, "id"))
		if cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"friendRequest": deleted,
		})
	}
}
