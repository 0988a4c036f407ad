package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_AdminArea(t *testing.T) {
	tests := []struct {
		name string
		path string
		p    Principal
		want Decision
	}{
		{
			name: "anonymous is sent to login with the requested path preserved",
			path: "/dashboard/projects",
			p:    Anonymous(),
			want: Decision{Action: ActionRedirect, Location: "/auth/login?redirectTo=%2Fdashboard%2Fprojects"},
		},
		{
			name: "authenticated non-admin is sent home",
			path: "/dashboard/projects",
			p:    Authenticated("u1", false),
			want: Decision{Action: ActionRedirect, Location: "/"},
		},
		{
			name: "admin is allowed",
			path: "/dashboard/projects",
			p:    Authenticated("u1", true),
			want: Decision{Action: ActionAllow},
		},
		{
			name: "area root itself is guarded",
			path: "/dashboard",
			p:    Anonymous(),
			want: Decision{Action: ActionRedirect, Location: "/auth/login?redirectTo=%2Fdashboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.path, tt.p))
		})
	}
}

func TestEvaluate_AuthArea(t *testing.T) {
	tests := []struct {
		name string
		path string
		p    Principal
		want Decision
	}{
		{
			name: "anonymous may use auth pages",
			path: "/auth/login",
			p:    Anonymous(),
			want: Decision{Action: ActionAllow},
		},
		{
			name: "signed-in non-admin is sent home",
			path: "/auth/login",
			p:    Authenticated("u1", false),
			want: Decision{Action: ActionRedirect, Location: "/"},
		},
		{
			name: "signed-in admin is sent to the dashboard",
			path: "/auth/login",
			p:    Authenticated("u1", true),
			want: Decision{Action: ActionRedirect, Location: "/dashboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.path, tt.p))
		})
	}
}

func TestEvaluate_PublicPathsAlwaysAllowed(t *testing.T) {
	paths := []string{"/", "/projects", "/blog/some-post", "/contact"}
	principals := []Principal{
		Anonymous(),
		Authenticated("u1", false),
		Authenticated("u1", true),
	}

	for _, path := range paths {
		for _, p := range principals {
			assert.Equal(t, Decision{Action: ActionAllow}, Evaluate(path, p),
				"path %q should be open to everyone", path)
		}
	}
}

// Prefix matching is per segment: a path that merely starts with the
// area string is not inside the area.
func TestEvaluate_AreaMatchIsWholeSegment(t *testing.T) {
	assert.Equal(t, Decision{Action: ActionAllow}, Evaluate("/dashboardx", Anonymous()))
	assert.Equal(t, Decision{Action: ActionAllow}, Evaluate("/authors", Authenticated("u1", true)))
}

func TestEvaluate_FailClosedPrincipal(t *testing.T) {
	// A caller that could not resolve the admin capability passes a
	// non-admin principal and must not reach the admin area.
	p := Authenticated("u1", false)
	got := Evaluate("/dashboard/settings", p)
	assert.Equal(t, ActionRedirect, got.Action)
	assert.Equal(t, "/", got.Location)
}
