package web

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tracy/internal/server"
)

const (
	// TokenFailed is the body returned when the token cannot be read or written.
	TokenFailed = "failed"
	// TokenSaved is the body returned after a successful save.
	TokenSaved = "saved"

	maxTokenBytes = 1 << 20
)

// TokenStore is the persistence the token endpoints need.
type TokenStore interface {
	Get() (string, error)
	Save(token string) error
}

// App wires assets and the token store to a [server.Router].
type App struct {
	assets *Assets
	store  TokenStore
	logger *log.Logger
}

// NewApp creates an [App].
func NewApp(assets *Assets, store TokenStore, logger *log.Logger) *App {
	return &App{assets: assets, store: store, logger: logger}
}

// Register adds every tracy route to router.
func (a *App) Register(router server.Router) {
	for route, name := range map[string]string{
		"/":          AppHTML,
		"/app.html":  AppHTML,
		"/theme.css": ThemeCSS,
		"/app.js":    AppJS,
		"/keys.js":   KeysJS,
		"/windows":   WindowsHTML,
	} {
		router.Handle(http.MethodGet, route, a.Static(name))
	}

	router.Handler(&tokenHandler{app: a})
	router.Fallback(http.HandlerFunc(a.notFound))
}

// Static serves one named asset.
func (a *App) Static(name string) http.Handler {
	contentType := mime.TypeByExtension(path.Ext(name))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := a.assets.Read(name)
		if err != nil {
			a.logger.Warn("static resource unavailable", "name", name, "source", a.assets.Source(), "error", err)
			a.respond(w, http.StatusInternalServerError, fmt.Sprintf("Error on providing static resource: %v", err))
			return
		}

		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		a.send(w, http.StatusOK, data)
	})
}

func (a *App) notFound(w http.ResponseWriter, r *http.Request) {
	a.respond(w, http.StatusNotFound, "No resource found")
}

// respond writes a plain-text body with status.
func (a *App) respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	a.send(w, status, []byte(body))
}

// send writes body and logs when the client could not receive it.
func (a *App) send(w http.ResponseWriter, status int, body []byte) {
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		a.logger.Error("could not send data to client", "status", status, "error", err)
	}
}

// tokenHandler serves /getToken and /saveToken for any method.
type tokenHandler struct {
	app *App
}

func (h *tokenHandler) Routes() []string {
	return []string{"/getToken", "/saveToken"}
}

func (h *tokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/getToken":
		h.get(w, r)
	case "/saveToken":
		h.save(w, r)
	default:
		h.app.notFound(w, r)
	}
}

func (h *tokenHandler) get(w http.ResponseWriter, r *http.Request) {
	token, err := h.app.store.Get()
	if err != nil {
		h.app.logger.Warn("could not read token", "error", err)
		token = TokenFailed
	}
	h.app.respond(w, http.StatusOK, token)
}

func (h *tokenHandler) save(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxTokenBytes))
	if err != nil {
		h.app.logger.Warn("could not read token from request", "error", err)
		h.app.respond(w, http.StatusOK, TokenFailed)
		return
	}

	if err := h.app.store.Save(string(body)); err != nil {
		h.app.logger.Warn("could not save token", "error", err)
		h.app.respond(w, http.StatusOK, TokenFailed)
		return
	}

	h.app.logger.Debug("token saved", "bytes", len(body))
	h.app.respond(w, http.StatusOK, TokenSaved)
}
