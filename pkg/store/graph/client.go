// Package graph is a minimal Microsoft Graph client backing the directory
// collaborator: raw owner identifier in, canonical display name and mail out.
package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/rs/zerolog"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

var tokenScopes = []string{"https://graph.microsoft.com/.default"}

// User is the subset of the Graph user resource the service reads.
type User struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
}

type Client struct {
	cred    azcore.TokenCredential
	http    *http.Client
	baseURL string
}

// NewClient builds a client-credentials Graph client from a directory
// profile.
func NewClient(profile domain.DirectoryProfile) (*Client, error) {
	cred, err := azidentity.NewClientSecretCredential(
		profile.TenantID,
		profile.ClientID,
		profile.ClientSecret,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory credential: %w", err)
	}

	return &Client{
		cred:    cred,
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: defaultBaseURL,
	}, nil
}

// GetUser looks up a user by object id or principal name.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	logger := zerolog.Ctx(ctx)

	token, err := c.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: tokenScopes})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to acquire directory token")
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"%s/users/%s?$select=id,displayName,mail,userPrincipalName",
		c.baseURL,
		url.PathEscape(id),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn().Err(err).Str("user", id).Msg("directory lookup failed")
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close directory response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory lookup for %q returned %d", id, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal directory response: %w", err)
	}
	return &user, nil
}
