package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/utensils/hexalith/pkg/buildinfo"
	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/logo"
	"github.com/utensils/hexalith/pkg/observability"
	"github.com/utensils/hexalith/pkg/palette"
	"github.com/utensils/hexalith/pkg/pipeline"
	"github.com/utensils/hexalith/pkg/seed"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
}

// generateRequest is the POST /generate body. Seed may be a number, a
// numeric string, empty or absent.
type generateRequest struct {
	Theme    string   `json:"theme"`
	Shapes   int      `json:"shapes"`
	GridSize int      `json:"grid_size"`
	Opacity  *float64 `json:"opacity"`
	Overlap  *bool    `json:"overlap"`
	UUID     string   `json:"uuid"`
	Seed     seedArg  `json:"seed"`
}

type generateResponse struct {
	Seed uint64 `json:"seed"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type themeResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	out := make([]themeResponse, 0, len(palette.All()))
	for _, t := range palette.All() {
		out = append(out, themeResponse{Name: t.String(), Description: t.Describe(), Colors: t.Colors()})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGenerate validates the parameters and resolves the seed. Images
// are then fetched from the seed endpoints.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body"))
			return
		}
	}

	p := logo.Params{
		Theme:   req.Theme,
		Shapes:  req.Shapes,
		Density: req.GridSize,
		Opacity: req.Opacity,
		Overlap: req.Overlap,
		UUID:    req.UUID,
		Seed:    req.Seed.value,
	}
	if err := p.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}
	src, err := seed.Derive(p.Seed, p.UUID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Seed: src.Seed})
}

func (s *Server) handleArtifact(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parseQuery(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		raw := chi.URLParam(r, "seed")
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			s.writeError(w, r, errors.InvalidParameter("seed", "an unsigned integer", fmt.Sprintf("%q", raw)))
			return
		}
		opts.Seed = logo.Uint64(v)
		opts.Formats = []string{format}
		opts.Logger = s.logger

		res, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		h := w.Header()
		h.Set("Content-Type", contentType)
		h.Set("Cache-Control", cacheControl)
		h.Set("X-Hexalith-Seed", strconv.FormatUint(res.Seed, 10))
		if res.CacheInfo.RenderHit {
			h.Set("X-Cache", "HIT")
		} else {
			h.Set("X-Cache", "MISS")
		}
		_, _ = w.Write(res.Artifacts[format])
	}
}

// parseQuery reads rendering parameters from the query string. Absent
// parameters take their defaults later.
func parseQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	var opts pipeline.Options
	var err error

	opts.Theme = q.Get("theme")
	opts.UUID = q.Get("uuid")
	opts.Background = q.Get("background")
	if opts.Shapes, err = intParam(q.Get("shapes"), "shape_count"); err != nil {
		return opts, err
	}
	if opts.Density, err = intParam(q.Get("grid_size"), "grid_density"); err != nil {
		return opts, err
	}
	if opts.Width, err = intParam(q.Get("width"), "width"); err != nil {
		return opts, err
	}
	if opts.Height, err = intParam(q.Get("height"), "height"); err != nil {
		return opts, err
	}
	if v := q.Get("opacity"); v != "" {
		f, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return opts, errors.InvalidParameter("opacity", "a number", fmt.Sprintf("%q", v))
		}
		opts.Opacity = logo.Float(f)
	}
	if v := q.Get("overlap"); v != "" {
		b, perr := parseBool(v)
		if perr != nil {
			return opts, errors.InvalidParameter("overlap", "a boolean", fmt.Sprintf("%q", v))
		}
		opts.Overlap = logo.Bool(b)
	}
	return opts, nil
}

func intParam(v, field string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.InvalidParameter(field, "an integer", fmt.Sprintf("%q", v))
	}
	return n, nil
}

// parseBool accepts strconv's forms plus HTML checkbox values.
func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(v)
}

// writeError maps coded errors to status codes. Caller mistakes get 400
// with the message, parameter sets that leave no room for every shape get
// 422, and everything else is logged and reported as 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errors.ErrCodeShapeGrowthExhausted) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    errors.ErrCodeShapeGrowthExhausted,
			Message: errors.UserMessage(err),
		})
		return
	}
	if errors.IsUserError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    errors.GetCode(err),
			Field:   errors.GetField(err),
			Message: errors.UserMessage(err),
		})
		return
	}

	route := r.URL.Path
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		route = rc.RoutePattern()
	}
	observability.HTTP().OnError(r.Context(), r.Method, route, err)
	s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Code: code, Message: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// seedArg decodes a seed given as a JSON number or string. Empty strings
// and null mean "no seed", as does a string that is not a number.
type seedArg struct{ value *uint64 }

func (a *seedArg) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	a.value = &v
	return nil
}
