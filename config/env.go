package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultAppPort       = "3000"
	defaultAppEnv        = "local"
	defaultDataDir       = "data"
	defaultLogsDir       = "logs"
	defaultStoreBackend  = "file"
	defaultAdminPassword = "dvx_studio_admin_password_2025_secret39"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once, merging them over the built-in
// defaults. Real environment variables win over both files.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"DATA_DIR":       defaultDataDir,
		"LOGS_DIR":       defaultLogsDir,
		"STORE_BACKEND":  defaultStoreBackend,
		"ADMIN_PASSWORD": defaultAdminPassword,
	}
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// DataDir is the directory holding the JSON document files.
func DataDir() string {
	_ = Load()
	return get("DATA_DIR", defaultDataDir)
}

// LogsDir is the directory the access log is appended to.
func LogsDir() string {
	_ = Load()
	return get("LOGS_DIR", defaultLogsDir)
}

// StoreBackend selects the storage engine: "file", "sqlite" or "memory".
func StoreBackend() string {
	_ = Load()

	backend := strings.ToLower(get("STORE_BACKEND", defaultStoreBackend))
	switch backend {
	case "file", "sqlite", "memory":
		return backend
	default:
		return defaultStoreBackend
	}
}

// AdminPassword is the admin secret. By convention it is exactly 39
// characters long; authentication checks the length as well as equality.
func AdminPassword() string {
	_ = Load()
	return get("ADMIN_PASSWORD", defaultAdminPassword)
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	for key := range loaded {
		if env := strings.TrimSpace(os.Getenv(key)); env != "" {
			loaded[key] = env
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and config/app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
