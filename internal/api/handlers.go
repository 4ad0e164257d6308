package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/hirepath/earnings-engine/internal/calculation"
	"github.com/hirepath/earnings-engine/internal/domain"
)

// Handler serves the calculator endpoints. It holds no mutable state;
// the engine and its reference data are read-only after construction,
// so a single Handler is safe for concurrent requests.
type Handler struct {
	engine *calculation.Engine
}

func NewHandler(engine *calculation.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	configs := h.engine.Presets().List()
	dtos := make([]toolDTO, 0, len(configs))
	for _, cfg := range configs {
		dtos = append(dtos, toToolDTO(cfg))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles := h.engine.Reference().Roles()
	dtos := make([]roleDTO, 0, len(roles))
	for _, role := range roles {
		dtos = append(dtos, toRoleDTO(role))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities := h.engine.Reference().Cities()
	dtos := make([]cityDTO, 0, len(cities))
	for _, city := range cities {
		dtos = append(dtos, toCityDTO(city))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) ListDifferentials(w http.ResponseWriter, r *http.Request) {
	rules := h.engine.Reference().Differentials()
	dtos := make([]differentialDTO, 0, len(rules))
	for _, rule := range rules {
		dtos = append(dtos, toDifferentialDTO(rule))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	toolID := chi.URLParam(r, "toolID")

	params, ok := decodeParams(w, r)
	if !ok {
		return
	}

	result, err := h.engine.Compute(toolID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResultDTO(result))
}

func (h *Handler) ComputeVariants(w http.ResponseWriter, r *http.Request) {
	toolID := chi.URLParam(r, "toolID")

	params, ok := decodeParams(w, r)
	if !ok {
		return
	}

	results, err := h.engine.ComputeVariants(toolID, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResultDTOs(results))
}

// decodeParams reads the request body as a flat parameter object. An
// empty body is treated as no parameters so preset defaults apply.
func decodeParams(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	params := map[string]interface{}{}
	if r.Body == nil {
		return params, true
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorDTO{Error: "invalid JSON body"})
		return nil, false
	}
	return params, true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	case domain.IsClientError(err):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorDTO{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
