package linear

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

// capture records what the fake Linear endpoint received.
type capture struct {
	authHeader string
	request    graphQLRequest
}

// fakeLinear serves a canned GraphQL response body and records the
// incoming request.
func fakeLinear(t *testing.T, response string, cap *capture) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		if cap != nil {
			cap.authHeader = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&cap.request))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
}

func newTestProvider(t *testing.T, endpoint string) *Provider {
	t.Helper()
	p, err := NewProvider(Config{APIKey: "lin_api_test", Endpoint: endpoint})
	require.NoError(t, err)
	return p
}

const issueJSON = `{
	"id": "abc-123",
	"title": "Fix login flow",
	"description": "Users get stuck on the second step.",
	"createdAt": "2024-05-01T10:00:00Z",
	"updatedAt": "2024-05-02T11:30:00Z",
	"state": {"name": "In Progress"},
	"assignee": {"name": "Sam", "email": "sam@example.com"},
	"labels": {"nodes": [{"name": "bug"}, {"name": "auth"}]},
	"project": {"id": "proj-1", "name": "Onboarding"}
}`

func TestNewProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewProvider(Config{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProvider))
}

func TestProvider_Name(t *testing.T) {
	assert.Equal(t, "Linear", newTestProvider(t, DefaultEndpoint).Name())
}

func TestFetchResources_MapsIssues(t *testing.T) {
	var cap capture
	srv := fakeLinear(t, `{"data": {"issues": {"nodes": [`+issueJSON+`]}}}`, &cap)
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	resources, err := p.FetchResources(context.Background(), &domain.Query{Source: "linear"})

	require.NoError(t, err)
	require.Len(t, resources, 1)

	r := resources[0]
	assert.Equal(t, "linear_abc-123", r.ID)
	assert.Equal(t, domain.LinearSource("abc-123", "proj-1"), r.Source)
	assert.Equal(t, "Fix login flow", r.Title)
	assert.Equal(t, "Users get stuck on the second step.", r.Content)
	assert.Equal(t, "In Progress", r.Metadata["state"])
	assert.Equal(t, []string{"bug", "auth"}, r.Metadata["labels"])
	assert.Equal(t, map[string]any{"name": "Sam", "email": "sam@example.com"}, r.Metadata["assignee"])
	assert.Equal(t, "2024-05-01T10:00:00Z", r.CreatedAt.Format("2006-01-02T15:04:05Z"))
}

func TestFetchResources_DefaultLimit(t *testing.T) {
	var cap capture
	srv := fakeLinear(t, `{"data": {"issues": {"nodes": []}}}`, &cap)
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.FetchResources(context.Background(), &domain.Query{Source: "linear"})

	require.NoError(t, err)
	assert.Equal(t, float64(DefaultLimit), cap.request.Variables["first"])
}

func TestFetchResources_CapsLimit(t *testing.T) {
	var cap capture
	srv := fakeLinear(t, `{"data": {"issues": {"nodes": []}}}`, &cap)
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.FetchResources(context.Background(), &domain.Query{Source: "linear", Limit: 1000})

	require.NoError(t, err)
	assert.Equal(t, float64(MaxLimit), cap.request.Variables["first"])
}

func TestFetchResourceByID_StripsPrefix(t *testing.T) {
	var cap capture
	srv := fakeLinear(t, `{"data": {"issue": `+issueJSON+`}}`, &cap)
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	resource, err := p.FetchResourceByID(context.Background(), "linear_abc-123")

	require.NoError(t, err)
	assert.Equal(t, "linear_abc-123", resource.ID)
	assert.Equal(t, "abc-123", cap.request.Variables["id"], "prefix is stripped before the API call")
}

func TestFetchResourceByID_NullIssueIsNotFound(t *testing.T) {
	srv := fakeLinear(t, `{"data": {"issue": null}}`, nil)
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.FetchResourceByID(context.Background(), "linear_missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSearch_MapsResults(t *testing.T) {
	var cap capture
	srv := fakeLinear(t, `{"data": {"issueSearch": {"nodes": [`+issueJSON+`]}}}`, &cap)
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	resources, err := p.Search(context.Background(), "login")

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "login", cap.request.Variables["query"])
}

func TestExecute_GraphQLErrors(t *testing.T) {
	srv := fakeLinear(t, `{"errors": [{"message": "rate limited"}, {"message": "try later"}]}`, nil)
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.Search(context.Background(), "anything")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProvider))
	assert.Contains(t, err.Error(), "rate limited, try later")
}

func TestExecute_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "authentication required", http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.Search(context.Background(), "anything")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProvider))
	assert.Contains(t, err.Error(), "401")
}

func TestAuth_PersonalKeySentVerbatim(t *testing.T) {
	var cap capture
	srv := fakeLinear(t, `{"data": {"issues": {"nodes": []}}}`, &cap)
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.FetchResources(context.Background(), &domain.Query{Source: "linear"})

	require.NoError(t, err)
	assert.Equal(t, "lin_api_test", cap.authHeader)
}

func TestAuth_OAuthTokenSentAsBearer(t *testing.T) {
	var cap capture
	srv := fakeLinear(t, `{"data": {"issues": {"nodes": []}}}`, &cap)
	defer srv.Close()

	p, err := NewProvider(Config{APIKey: "oauth-token", OAuth: true, Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = p.FetchResources(context.Background(), &domain.Query{Source: "linear"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer oauth-token", cap.authHeader)
}
