package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paddy-kbs-be/internal/bootstrap"
	"paddy-kbs-be/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			AuditLogFilePath:   filepath.Join(dir, "pipeline.log"),
			CorsAllowedOrigins: "*",
		},
		FactStore: config.FactStoreConfig{
			Driver:   config.StoreDriverMemory,
			Timeout:  time.Second,
			SeedFile: "../../seed/paddy_kbs.yaml",
		},
	}

	container, err := bootstrap.NewContainer(cfg)
	require.NoError(t, err)
	t.Cleanup(container.Close)

	return New(cfg, container)
}

func call(t *testing.T, s *Server, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.GetApp().Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestServer_RiceBlastInKandy(t *testing.T) {
	s := newTestServer(t)

	code, body := call(t, s, "POST", "/submit-input", `{"disease":"Rice Blast","budget":"1600","location":"Kandy","controlMethod":"Chemical"}`)
	require.Equal(t, 200, code, body)
	id := body["instance"].(string)

	code, body = call(t, s, "GET", "/user/"+id+"/r-treatments-suitable", "")
	require.Equal(t, 200, code)
	rows := body["data"].([]interface{})
	require.Len(t, rows, 2)
	assert.Equal(t, "T_Isoprothiolane", rows[0].(map[string]interface{})["treatment"])
	assert.Equal(t, "T_Tricyclazole", rows[1].(map[string]interface{})["treatment"])
	assert.Equal(t, "Beam 75 WP", rows[1].(map[string]interface{})["productName"])

	code, body = call(t, s, "GET", "/user/"+id+"/disease-details", "")
	require.Equal(t, 200, code)
	details := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Airborne Spores"}, details["primarySources"])
	assert.Equal(t, "Sym_BlastLeafLesion", details["symptoms"])
	assert.Equal(t, "Leaf, Leaf collar", details["affectedParts"])

	code, body = call(t, s, "GET", "/user/"+id+"/general-treatments", "")
	require.Equal(t, 200, code)
	assert.Empty(t, body["data"])
}

func TestServer_CulturalGeneralTreatment(t *testing.T) {
	s := newTestServer(t)

	code, body := call(t, s, "POST", "/submit-input", `{"disease":"Rice Blast","budget":500,"location":"Kandy","controlMethod":"cultural"}`)
	require.Equal(t, 200, code, body)
	id := body["instance"].(string)

	code, body = call(t, s, "GET", "/user/"+id+"/general-treatments", "")
	require.Equal(t, 200, code)
	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "T_SplitNitrogen", row["treatment"])
	assert.Equal(t, "No environment impact", row["environmentImpactVal"])
	assert.Equal(t, "No condition", row["conditionVal"])
}

func TestServer_BackgroundRoutes(t *testing.T) {
	s := newTestServer(t)

	code, body := call(t, s, "GET", "/health", "")
	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["success"])

	code, body = call(t, s, "GET", "/disease-environment/Sheath%20Blight", "")
	require.Equal(t, 200, code)
	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "28-32 C", rows[0].(map[string]interface{})["temperature"])

	code, body = call(t, s, "GET", "/general-guidelines", "")
	require.Equal(t, 200, code)
	assert.Len(t, body["data"], 5)
}
