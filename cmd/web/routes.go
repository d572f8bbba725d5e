package main

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/parkdui/LG-Thingo/ui"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	// The embedded FS paths match the URL paths, no prefix stripping needed.
	mux.Handle("GET /static/", cacheForeverHeaders(http.FileServerFS(ui.Files)))

	session := alice.New(app.sessionManager.LoadAndSave)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("GET /cards/{productGroup}", session.ThenFunc(app.cards))
	mux.Handle("GET /chat/{cardId}", session.ThenFunc(app.chatView))
	mux.Handle("POST /chat/{cardId}/message", session.ThenFunc(app.chatMessage))
	mux.Handle("POST /chat/{cardId}/finish", session.ThenFunc(app.chatFinish))
	mux.Handle("GET /chat/{cardId}/result", session.ThenFunc(app.result))

	// Registered without a method so the handler can answer 405 in the
	// JSON shape its clients expect.
	mux.Handle("/api/chat", session.ThenFunc(app.chatAPI))
	mux.Handle("GET /api/healthy", http.HandlerFunc(app.healthy))

	return app.recoverPanic(app.logRequest(secureHeaders(noSurf(commonContext(mux)))))
}
