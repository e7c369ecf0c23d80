package types

import (
	"github.com/go-playground/validator/v10"
)

// ManifestDescriptor represents a Manifest V3 extension manifest.
// Built once from a FeatureSet; never mutated after construction.
type ManifestDescriptor struct {
	ManifestVersion int    `json:"manifest_version" validate:"required,eq=3"`
	Name            string `json:"name" validate:"required,min=1,max=75"`
	Version         string `json:"version" validate:"required"`
	Description     string `json:"description,omitempty"`

	Action                *Action                `json:"action,omitempty"`
	Background            *Background            `json:"background,omitempty"`
	ContentScripts        []ContentScript        `json:"content_scripts,omitempty" validate:"dive"`
	Permissions           []string               `json:"permissions,omitempty"`
	HostPermissions       []string               `json:"host_permissions,omitempty"`
	DeclarativeNetRequest *DeclarativeNetRequest `json:"declarative_net_request,omitempty"`
}

// Action declares the toolbar popup entry point
type Action struct {
	DefaultPopup string `json:"default_popup,omitempty"`
	DefaultTitle string `json:"default_title,omitempty"`
}

// Background declares the service worker entry point
type Background struct {
	ServiceWorker string `json:"service_worker" validate:"required"`
}

// ContentScript declares a content script injection
type ContentScript struct {
	Matches []string `json:"matches" validate:"required,min=1"`
	JS      []string `json:"js,omitempty"`
	CSS     []string `json:"css,omitempty"`
	RunAt   string   `json:"run_at,omitempty"`
}

// DeclarativeNetRequest declares static blocking rulesets
type DeclarativeNetRequest struct {
	RuleResources []RuleResource `json:"rule_resources" validate:"required,min=1,dive"`
}

// RuleResource references a rules file shipped with the extension
type RuleResource struct {
	ID      string `json:"id" validate:"required"`
	Enabled bool   `json:"enabled"`
	Path    string `json:"path" validate:"required"`
}

// Validate validates the ManifestDescriptor using the validator.
func (m *ManifestDescriptor) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// EntryPoints returns every file path the manifest declares as an entry point.
// Used to check that declared files are actually emitted.
func (m *ManifestDescriptor) EntryPoints() []string {
	var paths []string
	if m.Action != nil && m.Action.DefaultPopup != "" {
		paths = append(paths, m.Action.DefaultPopup)
	}
	if m.Background != nil && m.Background.ServiceWorker != "" {
		paths = append(paths, m.Background.ServiceWorker)
	}
	for _, cs := range m.ContentScripts {
		paths = append(paths, cs.JS...)
		paths = append(paths, cs.CSS...)
	}
	if m.DeclarativeNetRequest != nil {
		for _, rr := range m.DeclarativeNetRequest.RuleResources {
			paths = append(paths, rr.Path)
		}
	}
	return paths
}
