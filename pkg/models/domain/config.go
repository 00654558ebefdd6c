package domain

import "fmt"

// DirectoryProfile holds the client-credentials identity used to query the
// directory service for owner resolution.
type DirectoryProfile struct {
	Name         string
	TenantID     string
	ClientID     string
	ClientSecret string
}

func (p DirectoryProfile) String() string {
	return fmt.Sprintf("%s@%s", p.Name, p.TenantID)
}
