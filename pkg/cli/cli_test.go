package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetregistry/internal/domain"
)

// runCLI executes the root command with args against an isolated HOME, so
// tests never touch a real ~/.registry.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func newAPIStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestRecordsList_Table(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := newAPIStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.Record{
			{ID: 1, FullName: "Alice", PopulationID: "P1", Status: "active", LastUpdated: "2024-01-01T00:00:00Z"},
			{ID: 2, FullName: "Bob", PopulationID: "P2", Status: "inactive", LastUpdated: "2024-02-01T00:00:00Z"},
		})
	})

	out, err := runCLI(t, "records", "list", "--host", srv.URL, "--token", "session-token")
	require.NoError(t, err)
	assert.Contains(t, out, "FULL NAME")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "inactive")
}

func TestRecordsList_JSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := newAPIStub(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Record{{ID: 7, FullName: "Carol"}})
	})

	out, err := runCLI(t, "records", "list", "--host", srv.URL, "--token", "x", "--output", "json")
	require.NoError(t, err)

	var records []domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].ID)
}

func TestRecordsCreate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := newAPIStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/data/entry", r.URL.Path)
		var in domain.RecordInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Alice", in.FullName)
		assert.Equal(t, "P1", in.PopulationID)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Record{ID: 3, FullName: in.FullName, Status: "active"})
	})

	out, err := runCLI(t, "records", "create",
		"--host", srv.URL, "--token", "x",
		"--full-name", "Alice", "--population-id", "P1")
	require.NoError(t, err)
	assert.Contains(t, out, "Created record 3")
}

func TestRecordsUpdate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := newAPIStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/dataupdate/4", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "record updated"})
	})

	out, err := runCLI(t, "records", "update", "4",
		"--host", srv.URL, "--token", "x",
		"--full-name", "Alice", "--population-id", "P1")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated record 4")
}

func TestRecordsDelete(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := newAPIStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/data/5", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "record deactivated"})
	})

	out, err := runCLI(t, "records", "delete", "5", "--host", srv.URL, "--token", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "Deactivated record 5")
}

func TestRecordsDelete_InvalidID(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCLI(t, "records", "delete", "abc", "--host", "http://unused", "--token", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestAPIErrorSurfaced(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := newAPIStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 404, "message": "record 9 not found"})
	})

	_, err := runCLI(t, "records", "delete", "9", "--host", srv.URL, "--token", "x")
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.Contains(t, apiErr.Message, "record 9 not found")
}

func TestHostFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := newAPIStub(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Record{})
	})
	t.Setenv("REGISTRY_HOST", srv.URL)
	t.Setenv("REGISTRY_TOKEN", "env-token")

	_, err := runCLI(t, "records", "list")
	require.NoError(t, err)
}

func TestHostFromProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	srv := newAPIStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer profile-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]domain.Record{})
	})

	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "staging",
		Profiles: map[string]Profile{
			"staging": {Host: srv.URL, Token: "profile-token"},
		},
	}))

	_, err := runCLI(t, "records", "list")
	require.NoError(t, err)
}

func TestFlagBeatsEnvAndProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("REGISTRY_TOKEN", "env-token")

	srv := newAPIStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer flag-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]domain.Record{})
	})

	_, err := runCLI(t, "records", "list", "--host", srv.URL, "--token", "flag-token")
	require.NoError(t, err)
}

func TestUserConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	in := &UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {Host: "http://localhost:8080", Token: "tok", Output: "json"},
			"prod":    {Host: "https://registry.example.com"},
		},
	}
	require.NoError(t, SaveUserConfig(in))

	out, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, in.CurrentProfile, out.CurrentProfile)
	assert.Equal(t, in.Profiles, out.Profiles)

	assert.Equal(t, "tok", out.ActiveProfile("").Token)
	assert.Equal(t, "https://registry.example.com", out.ActiveProfile("prod").Host)
	assert.Equal(t, Profile{}, out.ActiveProfile("missing"), "unknown profile is empty")
}
