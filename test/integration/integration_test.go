package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/earnings-engine/internal/api"
	"github.com/hirepath/earnings-engine/internal/calculation"
	"github.com/hirepath/earnings-engine/internal/output"
	"github.com/hirepath/earnings-engine/internal/refdata"
)

// TestEmbeddedDatasetEndToEnd runs every tool against every role and
// city in the shipped dataset and checks the structural invariants
// that must hold for any input.
func TestEmbeddedDatasetEndToEnd(t *testing.T) {
	ref, err := refdata.LoadDefault()
	require.NoError(t, err, "embedded dataset should load")
	engine := calculation.NewEngine(ref)

	tools := engine.Presets().List()
	require.Len(t, tools, 3)

	for _, tool := range tools {
		for _, role := range ref.Roles() {
			for _, city := range ref.Cities() {
				results, err := engine.ComputeVariants(tool.ToolID, map[string]interface{}{
					"roleId":   role.ID,
					"citySlug": city.Slug,
				})
				require.NoError(t, err, "%s/%s/%s", tool.ToolID, role.ID, city.Slug)
				require.NotEmpty(t, results)

				for _, res := range results {
					assert.True(t, res.LocalizedHourlyRange.Min.LessThanOrEqual(res.LocalizedHourlyRange.Max),
						"localized range inverted for %s in %s", role.ID, city.Slug)
					assert.True(t, res.GrossWeekly.IsPositive())
					assert.True(t, res.NetAnnual.LessThanOrEqual(res.GrossAnnual),
						"net must not exceed gross for %s in %s", role.ID, city.Slug)
					if tool.IncludeTaxes {
						assert.NotEmpty(t, res.TaxBreakdown,
							"tax tool must produce a breakdown for %s", city.Slug)
					} else {
						assert.Empty(t, res.TaxBreakdown)
						assert.True(t, res.NetAnnual.Equal(res.GrossAnnual))
					}
				}
			}
		}
	}
}

func TestFormattersOverLiveResults(t *testing.T) {
	ref, err := refdata.LoadDefault()
	require.NoError(t, err)
	engine := calculation.NewEngine(ref)

	results, err := engine.ComputeVariants("weekly-earnings", map[string]interface{}{
		"roleId":   "registered-nurse",
		"citySlug": "new-york-ny",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, name := range []string{"table", "json", "csv"} {
		f := output.GetFormatterByName(name)
		require.NotNil(t, f, name)
		data, err := f.Format(results)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}

	table := output.GetFormatterByName("table")
	data, err := table.Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), "20 hrs/wk")
	assert.Contains(t, string(data), "40 hrs/wk")
}

func TestHTTPAPIAgainstLiveServer(t *testing.T) {
	ref, err := refdata.LoadDefault()
	require.NoError(t, err)
	engine := calculation.NewEngine(ref)
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(engine)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	body := strings.NewReader(`{"roleId":"registered-nurse","citySlug":"seattle-wa"}`)
	resp, err = http.Post(srv.URL+"/api/compute/take-home-pay", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		NetAnnual    string `json:"netAnnual"`
		GrossAnnual  string `json:"grossAnnual"`
		TaxBreakdown []struct {
			Jurisdiction string `json:"jurisdiction"`
			Amount       string `json:"amount"`
		} `json:"taxBreakdown"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.NotEmpty(t, res.TaxBreakdown)
	assert.NotEqual(t, res.GrossAnnual, res.NetAnnual)

	// Washington has no state income tax; the state line is still
	// present with an explicit zero amount.
	var stateLine bool
	for _, line := range res.TaxBreakdown {
		if strings.Contains(line.Jurisdiction, "Washington") {
			stateLine = true
			assert.Equal(t, "0.00", line.Amount)
		}
	}
	assert.True(t, stateLine, "expected an explicit state tax line")
}
