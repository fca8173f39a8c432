package browse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/verify"
)

// RodRenderer drives a headless Chromium instance so pages are verified
// after JavaScript rendering. Extraction of structured fields is delegated
// to a model-backed Extractor.
type RodRenderer struct {
	cfg       model.BrowserConfig
	extractor *Extractor
	log       *zap.Logger
}

// NewRodRenderer creates a browser-backed renderer
func NewRodRenderer(cfg model.BrowserConfig, extractor *Extractor, log *zap.Logger) *RodRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &RodRenderer{
		cfg:       cfg,
		extractor: extractor,
		log:       log,
	}
}

// OpenSession launches (or attaches to) a browser and opens a blank page.
// The returned session owns both and releases them on Close.
func (r *RodRenderer) OpenSession(ctx context.Context) (verify.Session, error) {
	controlURL := r.cfg.ControlURL
	var launch *launcher.Launcher

	if controlURL == "" {
		launch = launcher.New().Headless(r.cfg.Headless)
		url, err := launch.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = url
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		if launch != nil {
			launch.Cleanup()
		}
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		if launch != nil {
			launch.Cleanup()
		}
		return nil, fmt.Errorf("create page: %w", err)
	}

	s := &rodSession{
		id:       uuid.NewString(),
		renderer: r,
		launch:   launch,
		browser:  browser,
		page:     page,
	}
	r.log.Debug("Opened browser session", zap.String("session_id", s.id))
	return s, nil
}

type rodSession struct {
	id       string
	renderer *RodRenderer
	launch   *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	current  *Page
}

func (s *rodSession) ID() string {
	return s.id
}

// Navigate loads the URL, waits for the page to finish loading, and
// captures the rendered title and visible text.
func (s *rodSession) Navigate(ctx context.Context, url string) error {
	s.current = nil

	timeout := s.renderer.cfg.NavigationTimeout
	page := s.page.Context(ctx).Timeout(timeout)

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load: %w", err)
	}

	res, err := page.Evaluate(&rod.EvalOptions{
		JS: `() => ({
			title: document.title || '',
			text: (document.body && document.body.innerText) || ''
		})`,
		ByValue: true,
	})
	if err != nil {
		return fmt.Errorf("capture page: %w", err)
	}

	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return fmt.Errorf("read page capture: %w", err)
	}

	var captured struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := json.Unmarshal(raw, &captured); err != nil {
		return fmt.Errorf("decode page capture: %w", err)
	}

	s.current = &Page{Title: captured.Title, Text: captured.Text}
	return nil
}

// Extract hands the rendered page to the model-backed extractor.
func (s *rodSession) Extract(ctx context.Context, req verify.ExtractRequest) (*model.PageAnalysis, error) {
	if s.current == nil {
		return nil, fmt.Errorf("no page loaded")
	}
	return s.renderer.extractor.Extract(ctx, req, s.current)
}

// Close releases the page, the browser connection, and the launched
// process if this session started one.
func (s *rodSession) Close() error {
	var firstErr error
	if s.page != nil {
		if err := s.page.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.launch != nil {
		s.launch.Cleanup()
	}
	return firstErr
}
