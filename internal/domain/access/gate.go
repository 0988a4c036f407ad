package access

import (
	"net/url"
	"strings"
)

const (
	AdminArea = "/dashboard"
	AuthArea  = "/auth"

	LoginPath = "/auth/login"
	HomePath  = "/"
)

// Evaluate classifies a request by path prefix and principal and
// decides allow / redirect. First matching rule wins:
//
//  1. admin area, anonymous        -> login, preserving the requested path
//  2. admin area, non-admin        -> home, silently
//  3. admin area, admin            -> allow
//  4. auth area, admin             -> admin area
//  5. auth area, authenticated     -> home
//  6. anything else                -> allow
//
// Callers that fail to resolve the admin capability must pass a
// non-admin principal; the gate itself never grants access on
// uncertainty.
func Evaluate(path string, p Principal) Decision {
	if inArea(path, AdminArea) {
		if !p.Authenticated {
			return redirect(LoginPath + "?redirectTo=" + url.QueryEscape(path))
		}
		if !p.Admin {
			return redirect(HomePath)
		}
		return allow()
	}

	if inArea(path, AuthArea) && p.Authenticated {
		if p.Admin {
			return redirect(AdminArea)
		}
		return redirect(HomePath)
	}

	return allow()
}

// inArea matches whole path segments: "/dashboard" and "/dashboard/x"
// are in the "/dashboard" area, "/dashboardx" is not.
func inArea(path, area string) bool {
	return path == area || strings.HasPrefix(path, area+"/")
}
