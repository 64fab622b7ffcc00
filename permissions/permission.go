package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission marks a route pattern. Skip makes it public; routes not listed
// require a bearer token.
type Permission struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// Load decodes a permission document and indexes it by method and pattern.
func Load(raw []byte) (*PermissionData, error) {
	var data PermissionData

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err //nolint:wrapcheck
	}

	data.index = make(map[string]Permission, len(data.Endpoints))
	for _, endpoint := range data.Endpoints {
		data.index[routeKey(endpoint.Method, endpoint.Path)] = endpoint
	}

	return &data, nil
}

// Lookup returns the entry for a chi route pattern, or the zero Permission.
func (r *PermissionData) Lookup(pattern, method string) Permission {
	if r == nil {
		return Permission{}
	}

	return r.index[routeKey(method, pattern)]
}

// IsPublic reports whether pattern may be served without a token.
func (r *PermissionData) IsPublic(pattern, method string) bool {
	return r.Lookup(pattern, method).Skip
}

func Get() *PermissionData {
	permissions, err := Load(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded route permissions")

	return permissions
}
