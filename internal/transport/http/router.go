package http

import "net/http"

// NewRouter wires the REST surface and the websocket play endpoint.
func NewRouter(leaderboard *LeaderboardHandler, ws *WSHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/leaderboard", leaderboard.HandleLeaderboard)
	mux.HandleFunc("/leaderboard/{language}", leaderboard.HandleLanguageLeaderboard)
	mux.HandleFunc("/ws", ws.ServeWS)
	return mux
}
