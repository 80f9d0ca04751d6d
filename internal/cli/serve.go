package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	charmlog "github.com/charmbracelet/log"

	"github.com/matzehuels/sciplot/pkg/cache"
	"github.com/matzehuels/sciplot/pkg/errors"
	"github.com/matzehuels/sciplot/pkg/plotter"
	"github.com/matzehuels/sciplot/pkg/sizes"
	"github.com/matzehuels/sciplot/pkg/styles"
)

// previewTTL bounds how long a rendered preview stays cached. The registry
// can change at runtime only through --profiles at startup, so entries stay
// valid; the TTL just caps memory growth.
const previewTTL = 10 * time.Minute

// serveCommand creates the serve command running the preview gallery server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		profilesPath string
		noCache      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve style/size previews over HTTP",
		Long: `Serve style/size previews over HTTP.

Endpoints:

  GET /formats                  registered sizes and styles as JSON
  GET /preview/{style}/{size}   demonstration figure as PNG

The preview endpoint accepts wide=true, height=<inches> and dpi=<n> query
parameters. Rendered images are cached in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadProfiles(profilesPath); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8093", "listen address")
	cmd.Flags().StringVar(&profilesPath, "profiles", "", "TOML file with additional size profiles")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the in-memory render cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	var store cache.Cache = cache.NewMemoryCache()
	if noCache {
		store = cache.NewNullCache()
	}
	defer store.Close()

	srv := &previewServer{logger: c.Logger, cache: store}

	httpSrv := &http.Server{
		Addr:    addr,
		Handler: srv.router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("preview server listening", "addr", "http://"+addr)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(errors.ErrCodeInternal, err, "serve %s", addr)
	}
	return nil
}

// previewServer renders style/size previews on demand.
type previewServer struct {
	logger *charmlog.Logger
	cache  cache.Cache

	// The LaTeX text handler shares a font cache that is not guaranteed to
	// be safe for concurrent draws, so renders are serialized.
	renderMu sync.Mutex
}

func (s *previewServer) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/formats", s.handleFormats)
	r.Get("/preview/{style}/{size}", s.handlePreview)
	return r
}

// formatsResponse is the JSON shape of GET /formats.
type formatsResponse struct {
	Styles []string   `json:"styles"`
	Sizes  []sizeInfo `json:"sizes"`
}

type sizeInfo struct {
	Name         string  `json:"name"`
	NormalWidth  float64 `json:"normal_width"`
	NormalHeight float64 `json:"normal_height"`
	WideWidth    float64 `json:"wide_width"`
	WideHeight   float64 `json:"wide_height"`
}

func (s *previewServer) handleFormats(w http.ResponseWriter, r *http.Request) {
	resp := formatsResponse{Styles: styles.Names()}
	for _, name := range sizes.Names() {
		p, err := sizes.Lookup(name)
		if err != nil {
			continue
		}
		resp.Sizes = append(resp.Sizes, sizeInfo{
			Name:         p.Name,
			NormalWidth:  p.NormalWidth,
			NormalHeight: p.NormalHeight,
			WideWidth:    p.WideWidth,
			WideHeight:   p.WideHeight,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *previewServer) handlePreview(w http.ResponseWriter, r *http.Request) {
	style := chi.URLParam(r, "style")
	size := chi.URLParam(r, "size")

	wide := r.URL.Query().Get("wide") == "true"
	height, err := queryFloat(r, "height", 0)
	if err != nil {
		http.Error(w, "invalid height", http.StatusBadRequest)
		return
	}
	dpi, err := queryInt(r, "dpi", plotter.DefaultDPI)
	if err != nil || dpi <= 0 {
		http.Error(w, "invalid dpi", http.StatusBadRequest)
		return
	}

	jobID := uuid.NewString()[:8]
	key := cache.Key("preview", style, size, wide, height, dpi)

	if data, ok, _ := s.cache.Get(r.Context(), key); ok {
		s.logger.Debug("preview served from cache", "job", jobID, "style", style, "size", size)
		writePNG(w, data)
		return
	}

	start := time.Now()
	data, err := s.render(style, size, wide, height, dpi)
	if err != nil {
		s.logger.Debug("preview failed", "job", jobID, "style", style, "size", size, "err", err)
		http.Error(w, errors.UserMessage(err), statusFor(err))
		return
	}
	s.logger.Debug("preview rendered",
		"job", jobID,
		"style", style,
		"size", size,
		"dpi", dpi,
		"bytes", len(data),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	_ = s.cache.Set(r.Context(), key, data, previewTTL)
	writePNG(w, data)
}

// render produces the PNG preview bytes for one combination.
func (s *previewServer) render(style, size string, wide bool, height float64, dpi int) ([]byte, error) {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	p, err := plotter.New("preview.png", style+","+size, plotter.DefaultFlag)
	if err != nil {
		return nil, err
	}
	if err := buildDemoFigure(p, wide, height); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := p.Figure().WriteTo(&buf, "png", dpi); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

// statusFor maps structured error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeStyleNotFound, errors.ErrCodeSizeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func queryFloat(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
