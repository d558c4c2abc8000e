package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"certgate/internal/domain"

	kratos "github.com/ory/kratos-client-go"
)

// IdentityGateway authenticates non-administrative users against the
// external identity provider. Implements domain.IdentityProvider.
//
// The boundary contract is deliberately narrow: email and password go
// out, an identity or a failure reason comes back.
type IdentityGateway struct {
	client  *kratos.APIClient
	timeout time.Duration
}

// NewIdentityGateway creates a gateway against the provider at baseURL.
// Calls are bounded by timeout; an exceeded deadline surfaces
// domain.ErrProviderTimeout rather than hanging the caller.
func NewIdentityGateway(baseURL string, timeout time.Duration) *IdentityGateway {
	configuration := kratos.NewConfiguration()
	configuration.Servers = []kratos.ServerConfiguration{
		{URL: baseURL},
	}

	configuration.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &IdentityGateway{
		client:  kratos.NewAPIClient(configuration),
		timeout: timeout,
	}
}

// Authenticate submits the credentials through the provider's native
// login flow and returns the authenticated identity.
func (g *IdentityGateway) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	flow, resp, err := g.client.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return nil, classifyProviderError(err, resp)
	}

	body := kratos.UpdateLoginFlowWithPasswordMethod{
		Identifier: email,
		Method:     "password",
		Password:   password,
	}

	login, resp, err := g.client.FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratos.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		return nil, classifyProviderError(err, resp)
	}

	session := login.GetSession()
	if session.Identity == nil {
		return nil, fmt.Errorf("%w: no identity in login response", domain.ErrProviderUnavailable)
	}

	identity := &domain.Identity{
		ID:    session.Identity.Id,
		Email: email,
		Role:  domain.RoleStudent,
	}

	if traits, ok := session.Identity.Traits.(map[string]interface{}); ok {
		if v, ok := traits["email"].(string); ok && v != "" {
			identity.Email = v
		}
		if v, ok := traits["full_name"].(string); ok {
			identity.FullName = v
		}
		if v, ok := traits["institution"].(string); ok {
			identity.Institution = v
		}
		if v, ok := traits["role"].(string); ok && domain.Role(v).Valid() {
			identity.Role = domain.Role(v)
		}
	}

	return identity, nil
}

// classifyProviderError maps transport and API failures onto the domain
// error taxonomy. Rejected credentials and timeouts are expected
// outcomes; everything else means the provider is unreachable or broken.
func classifyProviderError(err error, resp *http.Response) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrProviderTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrProviderTimeout
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return domain.ErrInvalidPassword
		}
		return fmt.Errorf("%w: provider returned status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
}
