package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/earnings-engine/internal/calculation"
	"github.com/hirepath/earnings-engine/internal/preset"
	"github.com/hirepath/earnings-engine/internal/refdata"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	ref, err := refdata.LoadDefault()
	require.NoError(t, err)
	engine := calculation.NewEngine(ref)
	return NewRouter(NewHandler(engine))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, testRouter(t), http.MethodGet, "/api/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestListTools(t *testing.T) {
	rec := doJSON(t, testRouter(t), http.MethodGet, "/api/tools", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tools []toolDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tools))
	require.Len(t, tools, 3)
	assert.Equal(t, preset.ToolWeeklyEarnings, tools[0].ID)
	assert.Equal(t, []string{"20", "40"}, tools[0].VariantHours)
}

func TestListReferenceData(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/roles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var roles []roleDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
	assert.NotEmpty(t, roles)

	rec = doJSON(t, router, http.MethodGet, "/api/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cities []cityDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	assert.NotEmpty(t, cities)
	for _, city := range cities {
		assert.NotEmpty(t, city.State, "city %s missing state", city.Slug)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/differentials", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rules []differentialDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rules))
	assert.NotEmpty(t, rules)
}

func TestComputeTakeHomePay(t *testing.T) {
	body := map[string]interface{}{
		"roleId":   "registered-nurse",
		"citySlug": "seattle-wa",
	}
	rec := doJSON(t, testRouter(t), http.MethodPost, "/api/compute/take-home-pay", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res resultDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, preset.ToolTakeHomePay, res.ToolID)
	assert.Equal(t, "40", res.HoursPerWeek)
	assert.NotEmpty(t, res.TaxBreakdown)
	assert.NotEqual(t, res.GrossAnnual, res.NetAnnual)
}

func TestComputeLocalizedRangeSkipsTaxes(t *testing.T) {
	body := map[string]interface{}{
		"roleId":   "warehouse-associate",
		"citySlug": "phoenix-az",
	}
	rec := doJSON(t, testRouter(t), http.MethodPost, "/api/compute/localized-range", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res resultDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.TaxBreakdown)
	assert.Equal(t, res.GrossAnnual, res.NetAnnual)
}

func TestComputeVariants(t *testing.T) {
	body := map[string]interface{}{
		"roleId":   "warehouse-associate",
		"citySlug": "phoenix-az",
	}
	rec := doJSON(t, testRouter(t), http.MethodPost, "/api/compute/weekly-earnings/variants", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var results []resultDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "20", results[0].HoursPerWeek)
	assert.Equal(t, "40", results[1].HoursPerWeek)
}

func TestComputeErrors(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/compute/no-such-tool", map[string]interface{}{
		"roleId": "warehouse-associate", "citySlug": "phoenix-az",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/compute/weekly-earnings", map[string]interface{}{
		"roleId": "no-such-role", "citySlug": "phoenix-az",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/compute/weekly-earnings", map[string]interface{}{
		"roleId": "warehouse-associate", "citySlug": "phoenix-az", "hoursPerWeek": -5,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/compute/weekly-earnings", bytes.NewBufferString("{not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
