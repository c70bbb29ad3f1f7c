package env

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"watcher/internal/application/port/output"

	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

const defaultAppEnv = "dev"

// EnvService reads settings from the process environment after the dotenv files have
// been applied to it.
type EnvService struct {
	lookup func(string) (string, bool)
}

// NewEnvService loads .env and then .env.<APP_ENV> over it. Missing files are skipped.
func NewEnvService() *EnvService {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = defaultAppEnv
	}

	loaded := loadDotEnv(".env", fmt.Sprintf(".env.%s", appEnv))
	log.Printf("env: APP_ENV=%s, files loaded: %v", appEnv, loaded)

	return &EnvService{lookup: os.LookupEnv}
}

// loadDotEnv applies files in order; a later file overrides an earlier one but never a
// variable that was set before the first file was read.
func loadDotEnv(files ...string) []string {
	preset := make(map[string]bool)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 && kv[i+1:] != "" {
			preset[kv[:i]] = true
		}
	}

	var loaded []string
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			continue
		}
		for key, value := range values {
			if preset[key] {
				continue
			}
			_ = os.Setenv(key, value)
		}
		loaded = append(loaded, file)
	}
	return loaded
}

func (e *EnvService) value(key string) string {
	lookup := e.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, _ := lookup(key)
	return strings.TrimSpace(v)
}

func (e *EnvService) Get(key string) string {
	return e.value(key)
}

func (e *EnvService) MustGet(key string) string {
	v := e.value(key)
	if v == "" {
		log.Fatalf("env: required variable %s is not set", key)
	}
	return v
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	if v := e.value(key); v != "" {
		return v
	}
	return defaultValue
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	return parse(e, key, defaultValue, strconv.ParseBool)
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	return parse(e, key, defaultValue, strconv.Atoi)
}

func (e *EnvService) GetDuration(key string, defaultValue time.Duration) time.Duration {
	return parse(e, key, defaultValue, time.ParseDuration)
}

// parse falls back to defaultValue when the variable is unset or malformed.
func parse[T any](e *EnvService, key string, defaultValue T, fn func(string) (T, error)) T {
	raw := e.value(key)
	if raw == "" {
		return defaultValue
	}
	v, err := fn(raw)
	if err != nil {
		log.Printf("env: ignoring malformed %s=%q: %v", key, raw, err)
		return defaultValue
	}
	return v
}
