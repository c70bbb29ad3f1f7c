package di

import (
	"fmt"
	"time"

	"watcher/internal/adapter/action"
	"watcher/internal/adapter/web"
	"watcher/internal/application/port/input"
	"watcher/internal/application/port/output"
	"watcher/internal/application/service"
	"watcher/internal/infrastructure/browser/rod"
	"watcher/internal/infrastructure/llm/gemini"
	"watcher/internal/infrastructure/logger"
	"watcher/internal/infrastructure/metrics"
	"watcher/internal/infrastructure/prompts"
	"watcher/internal/usecase/agent"
	"watcher/internal/usecase/moderation"
)

type Container struct {
	Browser   output.BrowserPort
	LLM       output.LLMPort
	Logger    output.LoggerPort
	Actions   output.ActionRegistry
	Metrics   *metrics.Recorder
	Moderator input.Moderator
	Server    *web.Server
}

type Config struct {
	GoogleAPIKey string
	LLMModel     string
	LLMBaseURL   string
	LLMTimeout   time.Duration

	BrowserHeadless bool
	BrowserTimeout  time.Duration
	ControlURL      string

	MaxSteps      int
	RunTimeout    time.Duration
	ScreenshotDir string
	HTTPAddr      string
	Log           logger.Config

	// Observer, when set, receives step-by-step progress of every run.
	Observer output.StepObserver
}

// DefaultRunTimeout bounds one moderation run, from the CLI or from a web request.
const DefaultRunTimeout = 30 * time.Minute

// ConfigFromEnv reads the runtime settings. A missing GOOGLE_API_KEY is not checked here;
// the model endpoint rejects the first request and the run reports that error.
func ConfigFromEnv(env output.ConfigPort) Config {
	logCfg := logger.DefaultConfig()
	logCfg.Level = env.GetWithDefault("LOG_LEVEL", logCfg.Level)
	logCfg.File = env.GetWithDefault("LOG_FILE", logCfg.File)

	return Config{
		GoogleAPIKey:    env.Get("GOOGLE_API_KEY"),
		LLMModel:        env.GetWithDefault("LLM_MODEL", gemini.DefaultModel),
		LLMBaseURL:      env.GetWithDefault("LLM_BASE_URL", gemini.DefaultBaseURL),
		LLMTimeout:      env.GetDuration("LLM_TIMEOUT", 2*time.Minute),
		BrowserHeadless: env.GetBool("BROWSER_HEADLESS", true),
		BrowserTimeout:  env.GetDuration("BROWSER_TIMEOUT", 30*time.Second),
		ControlURL:      env.Get("BROWSER_CONTROL_URL"),
		MaxSteps:        env.GetInt("AGENT_MAX_STEPS", agent.DefaultMaxSteps),
		RunTimeout:      env.GetDuration("MODERATION_TIMEOUT", DefaultRunTimeout),
		ScreenshotDir:   env.GetWithDefault("SCREENSHOT_DIR", "screenshots"),
		HTTPAddr:        env.GetWithDefault("HTTP_ADDR", ":7860"),
		Log:             logCfg,
	}
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	recorder := metrics.NewRecorder()

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.BrowserHeadless
	browserCfg.ControlURL = cfg.ControlURL
	if cfg.BrowserTimeout > 0 {
		browserCfg.Timeout = cfg.BrowserTimeout
	}
	browser := rod.NewBrowser(browserCfg, log.WithField("component", "browser"))

	llmCfg := gemini.DefaultConfig(cfg.GoogleAPIKey)
	if cfg.LLMModel != "" {
		llmCfg.Model = cfg.LLMModel
	}
	if cfg.LLMBaseURL != "" {
		llmCfg.BaseURL = cfg.LLMBaseURL
	}
	if cfg.LLMTimeout > 0 {
		llmCfg.Timeout = cfg.LLMTimeout
	}
	llmCfg.Logger = log.WithField("component", "llm")
	llm := gemini.NewAdapter(llmCfg)

	actions := service.NewActionRegistry(log, recorder)
	action.RegisterDefaults(actions, cfg.ScreenshotDir, log)

	opts := []agent.Option{agent.WithMaxSteps(cfg.MaxSteps)}
	if cfg.Observer != nil {
		opts = append(opts, agent.WithObserver(cfg.Observer))
	}
	runtime := agent.New(llm, log, prompts.SystemPromptTemplate, opts...)

	moderator := moderation.New(browser, runtime, actions, log, recorder)

	server := web.NewServer(web.Config{Metrics: recorder.Handler(), RunTimeout: cfg.RunTimeout}, moderator, log.WithField("component", "web"))

	return &Container{
		Browser:   browser,
		LLM:       llm,
		Logger:    log,
		Actions:   actions,
		Metrics:   recorder,
		Moderator: moderator,
		Server:    server,
	}, nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
}
