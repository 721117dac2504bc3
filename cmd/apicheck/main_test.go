package main

import (
	"testing"

	"connectgrower/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
basePath: /api
paths:
  /posts:
    get:
      responses:
        "200": {description: OK}
    post:
      responses:
        "201": {description: Created}
        "400": {description: Bad Request}
  /messages:
    get:
      responses:
        "200": {description: OK}
`

func TestCompare(t *testing.T) {
	base, err := parseSpec([]byte(baseYAML))
	require.NoError(t, err)
	assert.Equal(t, "/api", base.BasePath)

	revision, err := parseSpec([]byte(`
paths:
  /posts:
    get:
      responses:
        "200": {description: OK}
    post:
      responses:
        "201": {description: Created}
`))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"removed path: /messages",
		"removed response code: POST /posts -> 400",
	}, compare(base, revision))
	assert.Empty(t, compare(base, base))
}

func TestParseSpecRejectsMissingPaths(t *testing.T) {
	_, err := parseSpec([]byte("swagger: '2.0'\n"))
	assert.Error(t, err)
}

func TestSwaggerPath(t *testing.T) {
	assert.Equal(t, "/api/posts/{id}/like", swaggerPath("/api/posts/:id/like"))
	assert.Equal(t, "/api/posts", swaggerPath("/api/posts/"))
	assert.Equal(t, "/", swaggerPath("/"))
}

func TestEmbeddedDocsAreServed(t *testing.T) {
	spec, err := parseSpec([]byte(docs.SwaggerInfo.ReadDoc()))
	require.NoError(t, err)
	require.NotEmpty(t, spec.Paths)

	served, err := servedRoutes()
	require.NoError(t, err)
	assert.Empty(t, missingRoutes(spec, served))
}
