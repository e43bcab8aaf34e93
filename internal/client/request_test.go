package client

import (
	"testing"

	"github.com/fivetwenty-io/hypergraph/pkg/graph"
	"github.com/stretchr/testify/assert"
)

func TestEscapeTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target   string
		expected string
	}{
		{target: "/me?fields=id,name", expected: "/me?fields=id,name"},
		{target: "/search?q=hello world", expected: "/search?q=hello%20world"},
		{target: "/me?next=a%26b&x=1", expected: "/me?next=a%26b&x=1"},
		{target: "/me?q=\"quoted\"", expected: "/me?q=%22quoted%22"},
		{target: "/me?q=café", expected: "/me?q=caf%C3%A9"},
		{target: "/me?q={a|b}", expected: "/me?q=%7Ba%7Cb%7D"},
		{target: "/search?q=#golang&type=post", expected: "/search?q=%23golang&type=post"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, escapeTarget(tt.target))
		})
	}
}

func TestRequestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/me", requestPath("me"))
	assert.Equal(t, "/me", requestPath("/me"))
	assert.Equal(t, "/", requestPath(""))
}

func TestHostPort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "graph.facebook.com", hostPort(&graph.Config{Host: "graph.facebook.com"}))
	assert.Equal(t, "graph.facebook.com", hostPort(&graph.Config{Host: "graph.facebook.com", Port: 443}))
	assert.Equal(t, "localhost:8443", hostPort(&graph.Config{Host: "localhost", Port: 8443}))
}
