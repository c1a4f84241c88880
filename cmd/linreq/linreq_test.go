// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/api/v1"
	"github.com/mantacode/lin/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp(&out)
	err := app.Run(append([]string{"linreq"}, args...))
	return out.String(), err
}

func TestParseOptions(t *testing.T) {
	options, err := parseOptions([]string{
		"count=5",
		"membership=owner",
		"membership=manager",
		"headers.x-li-format=xml",
		"fields=:(id,name)",
	}, "")
	if assert.NoError(t, err) {
		assert.Equal(t, map[string]interface{}{
			"count":      "5",
			"membership": []string{"owner", "manager"},
			"headers":    map[string]string{"x-li-format": "xml"},
			"fields":     ":(id,name)",
		}, options)
	}

	options, err = parseOptions([]string{"start=10"}, `{"count":5,"body":{"name":"g"}}`)
	if assert.NoError(t, err) {
		assert.Equal(t, float64(5), options["count"])
		assert.Equal(t, "10", options["start"])
		assert.Equal(t, map[string]interface{}{"name": "g"}, options["body"])
	}

	_, err = parseOptions([]string{"count"}, "")
	assert.Error(t, err)
	_, err = parseOptions(nil, "[1,2]")
	assert.Error(t, err)
	_, err = parseOptions(nil, "{")
	assert.Error(t, err)
}

func TestBuildJSON(t *testing.T) {
	out, err := run(t, "build", "--opt", "count=10", "groups", "posts", "547033")
	if assert.NoError(t, err) {
		expected, _ := v1.Posts("547033", v1.PostsOptions{Count: v1.Int(10)})
		assert.Equal(t, expected.Path, gjson.Get(out, "path").String())
		assert.Equal(t, "GET", gjson.Get(out, "method").String())
	}
}

func TestBuildYAML(t *testing.T) {
	out, err := run(t, "--format", "yaml", "build", "updates", "like", "UNIU-1-2-SHARE", "false")
	if assert.NoError(t, err) {
		var doc map[string]interface{}
		if assert.NoError(t, yaml.Unmarshal([]byte(out), &doc)) {
			assert.Equal(t, "PUT", doc["method"])
			assert.Equal(t, "people/~/network/updates/key=UNIU-1-2-SHARE/is-liked", doc["path"])
			assert.Equal(t, "false", doc["body"])
		}
	}
}

func TestBuildHTTP(t *testing.T) {
	out, err := run(t, "--format", "http", "--base", "https://api.example.com/v1/",
		"build", "groups", "commentOnPost", "g-1", "Ship it.")
	if assert.NoError(t, err) {
		assert.True(t, strings.HasPrefix(out, "POST /v1/posts/g-1/comments HTTP/1.1\r\n"), out)
		assert.Contains(t, out, "Host: api.example.com\r\n")
		assert.Contains(t, out, "Content-Type: text/xml;charset=UTF-8\r\n")
		assert.Contains(t, out, "<comment><text>Ship it.</text></comment>")
	}
}

func TestBuildMissingArgument(t *testing.T) {
	_, err := run(t, "build", "groups", "show")
	assert.Error(t, err)

	_, err = run(t, "build", "groups")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "--format", "text", "list")
	if assert.NoError(t, err) {
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 28)
		assert.Contains(t, out, "PUT      groups.likePost <postId> <doLike>\n")
	}

	out, err = run(t, "list")
	if assert.NoError(t, err) {
		assert.Len(t, gjson.Parse(out).Array(), 28)
	}
}

func TestRestBackend(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(api.New(), restserver.Options{}))
	defer server.Close()

	out, err := run(t, "--backend", server.URL, "build", "news", "article", "5562792952759058434")
	if assert.NoError(t, err) {
		expected, _ := v1.Article("5562792952759058434", v1.FieldOptions{})
		assert.Equal(t, expected.Path, gjson.Get(out, "path").String())
	}
}

func TestUnwrapImage(t *testing.T) {
	out, err := run(t, "unwrap-image", "https://media.linkedin.com/media-proxy/ext?w=1&url=http%3A%2F%2Fexample.com%2Fa.png")
	if assert.NoError(t, err) {
		assert.Equal(t, "http://example.com/a.png\n", out)
	}
}

func TestBadFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "list")
	assert.Error(t, err)
}
