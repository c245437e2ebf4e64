package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// RootHandler serves the informational root page by rendering the project
// README to sanitized HTML.
type RootHandler struct {
	readmePath string
	logger     *slog.Logger
}

// NewRootHandler creates a RootHandler that renders the file at readmePath.
func NewRootHandler(readmePath string, logger *slog.Logger) *RootHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &RootHandler{
		readmePath: readmePath,
		logger:     logger.With(slog.String("component", "root_handler")),
	}
}

// Root handles GET /. When the README is missing it falls back to a plain
// text banner rather than failing the request.
func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(h.readmePath)
	if err != nil {
		h.logger.Debug("readme not readable, serving fallback banner",
			slog.String("path", h.readmePath),
			slog.String("error", err.Error()))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("posts-api: a users/posts CRUD service\n")); err != nil {
			h.logger.Error("failed to write root response", slog.String("error", err.Error()))
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(mdToHTML(data)); err != nil {
		h.logger.Error("failed to write root response", slog.String("error", err.Error()))
	}
}

// mdToHTML renders markdown to sanitized HTML.
func mdToHTML(md []byte) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(md)

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})

	maybeUnsafeHTML := markdown.Render(doc, renderer)
	return bluemonday.UGCPolicy().SanitizeBytes(maybeUnsafeHTML)
}
