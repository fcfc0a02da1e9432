package relay

import (
	"net/http"
	"strings"
)

// ChatPath is the path of the chat relay endpoint.
const ChatPath = "/api/chat"

// apiPrefix marks paths handled by the API surface rather than the
// static-asset collaborator.
const apiPrefix = "/api/"

// Router dispatches requests between the chat relay and the static-asset
// collaborator. It holds no state.
//
// Dispatch rules:
//   - POST /api/chat      -> chat relay
//   - other /api/chat     -> 405 Method Not Allowed
//   - any other /api/*    -> 404 Not Found
//   - everything else     -> static-asset collaborator, unchanged
//
// Routing mismatches are not logged; error logging lives in the relay.
type Router struct {
	// Assets serves the frontend UI. It is consumed as an opaque
	// pass-through collaborator.
	Assets http.Handler

	// Chat is the chat relay handler.
	Chat http.Handler
}

// NewRouter creates a router over the given collaborators.
func NewRouter(assets, chat http.Handler) *Router {
	return &Router{
		Assets: assets,
		Chat:   chat,
	}
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if !strings.HasPrefix(path, apiPrefix) {
		rt.Assets.ServeHTTP(w, r)
		return
	}

	if path == ChatPath {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rt.Chat.ServeHTTP(w, r)
		return
	}

	http.Error(w, "Not found", http.StatusNotFound)
}
