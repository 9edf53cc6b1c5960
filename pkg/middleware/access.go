package middleware

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dvxstudio/backend/pkg/logger"
)

// AccessLog appends one line per request to <dir>/access.log:
//
//	2025-01-20T10:00:00Z | GET /api/posts | IP: 127.0.0.1:54321
//
// This is the flat-file audit trail the admin panel tails; structured
// logging still goes through middleware.Logger.
func AccessLog(dir string) func(http.Handler) http.Handler {
	var (
		mu   sync.Mutex
		file *os.File
	)

	open := func() *os.File {
		mu.Lock()
		defer mu.Unlock()
		if file != nil {
			return file
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("access log: create dir", "dir", dir, "error", err)
			return nil
		}
		f, err := os.OpenFile(filepath.Join(dir, "access.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("access log: open", "dir", dir, "error", err)
			return nil
		}
		file = f
		return file
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if f := open(); f != nil {
				line := fmt.Sprintf("%s | %s %s | IP: %s\n",
					time.Now().UTC().Format(time.RFC3339), r.Method, r.URL.RequestURI(), r.RemoteAddr)
				mu.Lock()
				_, _ = f.WriteString(line)
				mu.Unlock()
			}
			next.ServeHTTP(w, r)
		})
	}
}
