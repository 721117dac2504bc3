package main

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"connectgrower/internal/config"
	"connectgrower/internal/database"
	"connectgrower/internal/server"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fiberParam = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)\??`)

// swaggerPath rewrites a Fiber route path into Swagger template form.
func swaggerPath(path string) string {
	path = fiberParam.ReplaceAllString(path, "{$1}")
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// servedRoutes builds the API against an in-memory database and returns its
// route table as path -> set of lower-case methods.
func servedRoutes() (map[string]map[string]struct{}, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	mediaDir, err := os.MkdirTemp("", "apicheck-media")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(mediaDir) }()

	cfg := &config.Config{
		Env:              "test",
		Port:             "0",
		PublicBaseURL:    "http://localhost",
		DefaultLocale:    "en",
		DBDriver:         "sqlite",
		JWTSecret:        "apicheck-route-table-secret-0123456789",
		StorageDriver:    "local",
		MediaDir:         mediaDir,
		MediaMaxUploadMB: 1,
	}
	srv, err := server.NewServerWithDeps(cfg, db, nil)
	if err != nil {
		return nil, fmt.Errorf("build server: %w", err)
	}
	return routeTable(srv.App()), nil
}

func routeTable(app *fiber.App) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	for _, r := range app.GetRoutes(true) {
		p := swaggerPath(r.Path)
		if out[p] == nil {
			out[p] = make(map[string]struct{})
		}
		out[p][strings.ToLower(r.Method)] = struct{}{}
	}
	return out
}

// missingRoutes lists documented operations the server does not serve.
func missingRoutes(spec parsedSpec, served map[string]map[string]struct{}) []string {
	var issues []string
	for path, ops := range spec.Paths {
		full := spec.BasePath + path
		for method := range ops {
			if _, ok := served[full][method]; !ok {
				issues = append(issues, fmt.Sprintf("documented but not served: %s %s", strings.ToUpper(method), full))
			}
		}
	}
	sort.Strings(issues)
	return issues
}
