package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// Registry exposes the directory-credentials profiles of an ini file
// (one section per tenant, keys tenant_id/client_id/client_secret).
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.DirectoryProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.DirectoryProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.DirectoryProfile{}, fmt.Errorf("profile %s not found", name)
	}

	profile := domain.DirectoryProfile{
		Name:         name,
		TenantID:     section.Key("tenant_id").String(),
		ClientID:     section.Key("client_id").String(),
		ClientSecret: section.Key("client_secret").String(),
	}
	if profile.TenantID == "" || profile.ClientID == "" || profile.ClientSecret == "" {
		return domain.DirectoryProfile{}, fmt.Errorf("profile %s is missing credentials", name)
	}
	return profile, nil
}
