package permissions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var errInvalidEndpoint = errors.New("invalid permission endpoint")

// Permission guards one route pattern. A public endpoint needs no credentials; otherwise the
// caller's role must be listed in Permissions, and an empty list admits any authenticated caller.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func key(path, method string) string {
	return strings.ToUpper(method) + " " + path
}

// Parse decodes and indexes a permission table.
func Parse(raw []byte) (*PermissionData, error) {
	var data PermissionData

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	data.index = make(map[string]Permission, len(data.Endpoints))

	for _, endpoint := range data.Endpoints {
		if !strings.HasPrefix(endpoint.Path, "/") || !knownMethod(endpoint.Method) {
			return nil, fmt.Errorf("%w: %s %s", errInvalidEndpoint, endpoint.Method, endpoint.Path)
		}

		k := key(endpoint.Path, endpoint.Method)
		if _, dup := data.index[k]; dup {
			return nil, fmt.Errorf("%w: duplicate %s", errInvalidEndpoint, k)
		}

		data.index[k] = endpoint
	}

	return &data, nil
}

func knownMethod(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}

	return false
}

// FindPermissions returns the rule registered for a route pattern, or a zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
			return rp.Path == path && strings.EqualFold(rp.Method, method)
		})
		if idx == -1 {
			return Permission{}
		}

		return r.Endpoints[idx]
	}

	return r.index[key(path, method)]
}

// IsPublic reports whether a route is reachable without credentials.
func (r *PermissionData) IsPublic(path, method string) bool {
	return r.Skip || r.FindPermissions(path, method).Skip
}

// Allows reports whether role may call the route.
func (r *PermissionData) Allows(path, method, role string) bool {
	permission := r.FindPermissions(path, method)

	return permission.Skip || len(permission.Permissions) == 0 || slices.Contains(permission.Permissions, role)
}

var load = sync.OnceValue(func() *PermissionData {
	data, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Successfully loaded embedded permissions")

	return data
})

// Get returns the embedded permission table, parsed once per process.
func Get() *PermissionData {
	return load()
}
