// Package websocket pushes Iso Tactics state to browsers and other watchers.
//
// A central Hub owns every connection. Clients attach to one session with
// /ws?session=<id>; after each command that changes the session the HTTP
// layer calls BroadcastState and every attached client receives a
// state_update message holding the new GameState and the events that
// produced it. Incoming frames are read only to keep the connection alive.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//
//	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
//
// The hub's client map is only touched by the Run goroutine; registration,
// broadcasts and counts all travel over channels.
package websocket
