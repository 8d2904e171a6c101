package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

// mockServer builds an httptest.Server that checks the request line
// before handing off to a canned response.
type mockServer struct {
	t          *testing.T
	handler    http.HandlerFunc
	expectPath string
	expectMeth string
	expectQry  map[string]string
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{t: t, expectQry: map[string]string{}}
}

func (m *mockServer) ExpectPath(path string) *mockServer {
	m.expectPath = path
	return m
}

func (m *mockServer) ExpectGET() *mockServer {
	m.expectMeth = http.MethodGet
	return m
}

func (m *mockServer) ExpectPOST() *mockServer {
	m.expectMeth = http.MethodPost
	return m
}

func (m *mockServer) ExpectQuery(key, value string) *mockServer {
	m.expectQry[key] = value
	return m
}

// Handler sets a custom handler run after verification.
func (m *mockServer) Handler(h func(w http.ResponseWriter, r *http.Request)) *mockServer {
	m.handler = h
	return m
}

func (m *mockServer) RespondJSON(v any) *mockServer {
	return m.RespondStatusJSON(http.StatusOK, v)
}

func (m *mockServer) RespondStatusJSON(code int, v any) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(m.t, w, code, v)
	}
	return m
}

// RespondError answers with the server's {"error", "code"} body.
func (m *mockServer) RespondError(code int, message string) *mockServer {
	return m.RespondStatusJSON(code, map[string]string{"error": message, "code": "TEST"})
}

func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.expectPath != "" {
			assert.Equal(m.t, m.expectPath, r.URL.Path, "unexpected request path")
		}
		if m.expectMeth != "" {
			assert.Equal(m.t, m.expectMeth, r.Method, "unexpected request method")
		}
		for k, v := range m.expectQry {
			assert.Equal(m.t, v, r.URL.Query().Get(k), "unexpected query param %s", k)
		}
		if m.handler != nil {
			m.handler(w, r)
		}
	}))
	m.t.Cleanup(srv.Close)
	return srv
}

func respondJSON(t *testing.T, w http.ResponseWriter, code int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON response: %v", err)
	}
}

// runCLI executes the root command against srv and returns stdout.
// Flag state is reset first since cobra commands are package globals.
func runCLI(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	serverURL = "http://localhost:5000"
	jsonOutput = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--server", srv.URL}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
