package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"watcher/internal/application/port/output"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
)

var _ output.BrowserPort = (*Browser)(nil)

const (
	defaultTimeout = 30 * time.Second
	idleWait       = 2 * time.Second
)

type Config struct {
	Headless  bool
	NoSandbox bool
	Timeout   time.Duration

	// ControlURL connects to an already running browser instead of launching one.
	ControlURL string
	Clean      CleanConfig
}

func DefaultConfig() Config {
	return Config{
		Headless:  true,
		NoSandbox: true,
		Timeout:   defaultTimeout,
		Clean:     DefaultCleanConfig,
	}
}

// Browser owns one Chrome process. Every session gets its own incognito context,
// so cookies and storage never leak between moderation runs.
type Browser struct {
	cfg    Config
	logger output.LoggerPort

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func NewBrowser(cfg Config, logger output.LoggerPort) *Browser {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Clean.MaxOutputSize <= 0 {
		cfg.Clean = DefaultCleanConfig
	}
	return &Browser{cfg: cfg, logger: logger}
}

// connect launches Chrome on first use.
func (b *Browser) connect() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser != nil {
		return b.browser, nil
	}

	controlURL := b.cfg.ControlURL
	if controlURL == "" {
		l := launcher.New().
			Headless(b.cfg.Headless).
			NoSandbox(b.cfg.NoSandbox).
			Delete("use-mock-keychain")

		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("failed to launch browser: %w", err)
		}
		b.launcher = l
		controlURL = u
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		b.killLauncher()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	b.logger.Info("Browser started", "headless", b.cfg.Headless, "remote", b.cfg.ControlURL != "")
	b.browser = browser
	return browser, nil
}

func (b *Browser) NewSession(ctx context.Context) (output.SessionPort, error) {
	browser, err := b.connect()
	if err != nil {
		return nil, err
	}

	incognito, err := browser.Context(ctx).Incognito()
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = incognito.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	id := uuid.NewString()
	b.logger.Debug("Session opened", "session", id)

	return &Session{
		id:        id,
		incognito: incognito,
		page:      page.Context(context.Background()),
		timeout:   b.cfg.Timeout,
		clean:     b.cfg.Clean,
		logger:    b.logger.WithField("session", id),
	}, nil
}

func (b *Browser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			b.logger.Warn("Browser close failed", "error", err)
		}
		b.browser = nil
	}
	b.killLauncher()
}

func (b *Browser) killLauncher() {
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
		b.launcher = nil
	}
}
