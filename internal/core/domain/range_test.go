package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/filedep/internal/core/domain"
)

func TestClassifyRange(t *testing.T) {
	tests := []struct {
		name  string
		rng   string
		want  domain.RangeKind
		local bool
	}{
		{name: "semver range", rng: "^1.2.0", want: domain.RangeOpaque},
		{name: "dist tag", rng: "latest", want: domain.RangeOpaque},
		{name: "git url", rng: "git+https://example.com/repo.git", want: domain.RangeOpaque},
		{name: "empty", rng: "", want: domain.RangeOpaque},
		{name: "bare dot", rng: ".", want: domain.RangeOpaque},
		{name: "hidden dir without slash", rng: ".hidden", want: domain.RangeOpaque},
		{name: "current dir prefix", rng: "./pkgs/foo", want: domain.RangeRelativePath, local: true},
		{name: "parent dir prefix", rng: "../libs/a", want: domain.RangeRelativePath, local: true},
		{name: "absolute path", rng: "/abs/foo", want: domain.RangeAbsolutePath, local: true},
		{name: "protocol relative", rng: "file:../libs/a", want: domain.RangeProtocolForm, local: true},
		{name: "protocol absolute", rng: "file:/abs/foo", want: domain.RangeProtocolForm, local: true},
		{name: "protocol without slash", rng: "file:vendor/x", want: domain.RangeProtocolForm, local: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClassifyRange(tt.rng))
			assert.Equal(t, tt.local, domain.IsLocalPath(tt.rng))
		})
	}
}

func TestStripProtocol(t *testing.T) {
	assert.Equal(t, "./vendor/x", domain.StripProtocol("file:./vendor/x"))
	assert.Equal(t, "../a", domain.StripProtocol("../a"))
	assert.Equal(t, "file:x", domain.StripProtocol("file:file:x"), "only one prefix is removed")
}

func TestRangeKind_String(t *testing.T) {
	assert.Equal(t, "opaque", domain.RangeOpaque.String())
	assert.Equal(t, "relative-path", domain.RangeRelativePath.String())
	assert.Equal(t, "absolute-path", domain.RangeAbsolutePath.String())
	assert.Equal(t, "protocol-form", domain.RangeProtocolForm.String())
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		want     string
	}{
		{"no segments", "/repo", nil, "/repo"},
		{"relative chain", "/repo", []string{"./a", "../b", "c"}, "/repo/b/c"},
		{"absolute resets", "/repo", []string{"./a", "/other", "./c"}, "/other/c"},
		{"empty segment", "/repo", []string{"", "./x"}, "/repo/x"},
		{"cleans dots", "/repo/./pkgs/../app", nil, "/repo/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ResolvePath(tt.base, tt.segments...))
		})
	}
}
