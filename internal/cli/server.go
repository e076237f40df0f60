package cli

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/distributed_lab/logan/v3"

	"prng-go/internal/metrics"
	"prng-go/internal/presenter"
	"prng-go/internal/solver"
	"prng-go/pkg/distribution"
	"prng-go/pkg/pseudorandom"
	"prng-go/pkg/readseries"
	"prng-go/pkg/uniformity"
)

// maxBodyBytes caps request bodies; mapper requests carry their Ri inline.
const maxBodyBytes = 64 << 20

type handler struct {
	presenter *presenter.Presenter
	log       *logan.Entry
}

// NewHandler routes the generator and mapper endpoints and /metrics.
// Requests do not persist anything; mappers may still read Ri persisted
// by the command line through "source".
func NewHandler(p *presenter.Presenter, m *metrics.Metrics, log *logan.Entry) http.Handler {
	h := &handler{presenter: p, log: log}

	r := http.NewServeMux()
	r.HandleFunc("POST /api/v1/middle-square", h.middleSquare)
	r.HandleFunc("POST /api/v1/linear-congruential", h.linearCongruential)
	r.HandleFunc("POST /api/v1/multiplicative-congruential", h.multiplicativeCongruential)
	r.HandleFunc("POST /api/v1/uniform", h.uniform)
	r.HandleFunc("POST /api/v1/normal-inverse", h.normalInverse)
	r.Handle("GET /metrics", m.Handler())
	return r
}

type generatorResponse struct {
	Method  pseudorandom.Method `json:"method"`
	Xi      readseries.Numbers  `json:"xi"`
	Ri      readseries.Numbers  `json:"ri"`
	Ni      readseries.Numbers  `json:"ni"`
	Centers []int64             `json:"centers,omitempty"`
	Checks  []uniformity.Result `json:"checks,omitempty"`
}

type mapperRequest struct {
	Ri     []float64 `json:"ri"`
	Source string    `json:"source"`
}

type mapperResponse struct {
	Ri          readseries.Numbers `json:"ri"`
	Ni          readseries.Numbers `json:"ni"`
	Intervals   readseries.Numbers `json:"intervals,omitempty"`
	Frequencies []int              `json:"frequencies,omitempty"`
	Fit         *solver.Fit        `json:"fit,omitempty"`
}

func (h *handler) middleSquare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		pseudorandom.MiddleSquareParams
		Check bool `json:"check"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	h.generate(w, req.MiddleSquareParams, req.Check)
}

func (h *handler) linearCongruential(w http.ResponseWriter, r *http.Request) {
	var req struct {
		pseudorandom.LinearCongruentialParams
		Check bool `json:"check"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	h.generate(w, req.LinearCongruentialParams, req.Check)
}

func (h *handler) multiplicativeCongruential(w http.ResponseWriter, r *http.Request) {
	var req struct {
		pseudorandom.MultiplicativeCongruentialParams
		Check bool `json:"check"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	h.generate(w, req.MultiplicativeCongruentialParams, req.Check)
}

func (h *handler) generate(w http.ResponseWriter, g pseudorandom.Generator, check bool) {
	report, err := h.presenter.RunGenerator(g, presenter.Options{Check: check})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, generatorResponse{
		Method:  report.Method,
		Xi:      report.Series.Xi,
		Ri:      report.Series.Ri,
		Ni:      report.Series.Ni,
		Centers: report.Centers,
		Checks:  report.Checks,
	})
}

func (h *handler) uniform(w http.ResponseWriter, r *http.Request) {
	var req struct {
		distribution.UniformParams
		mapperRequest
	}
	if !h.decode(w, r, &req) {
		return
	}
	ri, err := h.loadRi(req.mapperRequest)
	if err != nil {
		h.fail(w, err)
		return
	}
	report, err := h.presenter.RunUniform(ri, req.UniformParams, presenter.Options{})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, mapperResponse{Ri: report.Ri, Ni: report.Ni})
}

func (h *handler) normalInverse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		distribution.NormalInvParams
		mapperRequest
		Fit bool `json:"fit"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	ri, err := h.loadRi(req.mapperRequest)
	if err != nil {
		h.fail(w, err)
		return
	}
	report, err := h.presenter.RunNormal(ri, req.NormalInvParams, presenter.Options{Fit: req.Fit})
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, mapperResponse{
		Ri:          report.Ri,
		Ni:          report.Ni,
		Intervals:   report.Intervals,
		Frequencies: report.Frequencies,
		Fit:         report.Fit,
	})
}

func (h *handler) loadRi(req mapperRequest) ([]float64, error) {
	if len(req.Ri) > 0 || req.Source == "" {
		return req.Ri, nil
	}
	method, err := pseudorandom.ParseMethod(req.Source)
	if err != nil {
		return nil, err
	}
	return h.presenter.LoadSource(method)
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		h.render(w, http.StatusBadRequest, errorResponse{Error: "failed to decode request: " + err.Error()})
		return false
	}
	return true
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	if isBadRequest(err) {
		h.render(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	h.log.WithError(err).Error("request failed")
	h.render(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func isBadRequest(err error) bool {
	var paramErr *pseudorandom.ParameterError
	var validationErr *distribution.ValidationError
	return errors.As(err, &paramErr) ||
		errors.As(err, &validationErr) ||
		errors.Is(err, presenter.ErrNoSource)
}

func (h *handler) render(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WithError(err).Error("failed to render response")
	}
}
