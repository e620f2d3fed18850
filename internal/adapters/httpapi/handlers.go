package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"tracklist/internal/adapters/preview"
	"tracklist/internal/application"
	"tracklist/internal/application/commands"
	"tracklist/internal/domain"
	"tracklist/internal/ports"
)

// MaxPreviewWidth caps the width query parameter of preview requests.
const MaxPreviewWidth = 4 * domain.PreviewWidth

// Handler holds API route handlers.
type Handler struct {
	repo     ports.DesignRepository
	renderer ports.PreviewRenderer
	rides    domain.RideTypeTable
	format   domain.MeasurementFormat
	log      logrus.FieldLogger
}

// NewHandler creates a new Handler.
func NewHandler(repo ports.DesignRepository, renderer ports.PreviewRenderer, rides domain.RideTypeTable, format domain.MeasurementFormat, log logrus.FieldLogger) *Handler {
	return &Handler{repo: repo, renderer: renderer, rides: rides, format: format, log: log}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListDesigns handles GET /api/designs?ride=N&vehicle=&filter=&sort=&asc=&costs=.
func (h *Handler) ListDesigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rideType, err := rideParam(q)
	if err != nil {
		h.fail(w, err)
		return
	}
	asc, err := boolParam(q, "asc")
	if err != nil {
		h.fail(w, err)
		return
	}
	costs, err := boolParam(q, "costs")
	if err != nil {
		h.fail(w, err)
		return
	}

	cmd := commands.NewListDesignsCommand(h.repo, h.rides, h.log, domain.RideSelection{
		Type:    rideType,
		Vehicle: q.Get("vehicle"),
	})
	cmd.Filter = q.Get("filter")
	cmd.SortKey = q.Get("sort")
	cmd.Ascending = asc
	cmd.IncludeCost = costs

	result, err := cmd.Execute(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	resp := DesignListResponse{
		RideType:  int(result.Selection.Type),
		Vehicle:   result.Selection.Vehicle,
		RideName:  result.RideName,
		SortKey:   result.SortKey.String(),
		Ascending: result.Ascending,
		Designs:   make([]DesignItem, 0, len(result.Designs)),
	}
	for _, d := range result.Designs {
		item := DesignItem{Name: d.Name, Path: d.Path}
		if costs {
			cost := d.Cost
			item.Cost = &cost
		}
		resp.Designs = append(resp.Designs, item)
	}
	if costs {
		total := result.TotalCost
		resp.TotalCost = &total
	}
	writeJSON(w, http.StatusOK, resp)
}

// SortKeys handles GET /api/designs/keys?ride=N.
func (h *Handler) SortKeys(w http.ResponseWriter, r *http.Request) {
	rideType, err := rideParam(r.URL.Query())
	if err != nil {
		h.fail(w, err)
		return
	}

	keys, err := commands.NewSortKeysCommand(h.rides, rideType).Execute(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	items := make([]SortKeyItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, SortKeyItem{Key: k.String(), Label: k.Label()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"keys": items})
}

// GetDesign handles GET /api/design?path=.
func (h *Handler) GetDesign(w http.ResponseWriter, r *http.Request) {
	cmd := commands.NewShowDesignCommand(h.repo, h.rides, h.format, r.URL.Query().Get("path"))
	details, err := cmd.Execute(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	d := details.Design
	resp := DesignDetail{
		Name:     details.Ref.Name,
		Path:     details.Ref.Path,
		RideType: int(d.RideType),
		RideName: details.RideName,
		Vehicle:  d.Vehicle,
		Cost:     d.Cost,
		Stats:    make([]StatItem, 0, len(details.Stats)),
		Warnings: details.Warnings,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	for _, s := range details.Stats {
		resp.Stats = append(resp.Stats, StatItem{Label: s.Label, Value: s.Value})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Preview handles GET /api/design/preview?path=&rotation=&width=&scenery=.
// The response is a PNG of one rotation.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rotation, err := intParam(q, "rotation", 0)
	if err != nil {
		h.fail(w, err)
		return
	}
	width, err := intParam(q, "width", 0)
	if err != nil {
		h.fail(w, err)
		return
	}
	if width < 0 || width > MaxPreviewWidth {
		h.fail(w, &application.ValidationError{
			Field:   "width",
			Message: fmt.Sprintf("width must be between 0 and %d", MaxPreviewWidth),
		})
		return
	}

	cmd := commands.NewPreviewCommand(h.repo, h.renderer, q.Get("path"))
	cmd.Rotation = rotation
	if q.Has("scenery") {
		scenery, err := boolParam(q, "scenery")
		if err != nil {
			h.fail(w, err)
			return
		}
		cmd.Scenery = scenery
	}

	result, err := cmd.Execute(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	img, err := preview.Thumbnail(result.Pixels, result.Rotation, width)
	if err != nil {
		h.fail(w, err)
		return
	}

	var buf bytes.Buffer
	if err := preview.Encode(&buf, img); err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// fail writes err as a JSON error body. Internal errors and the causes of
// load failures are logged and hidden from the client.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	var loadErr *application.LoadError
	switch {
	case status == http.StatusInternalServerError:
		h.log.WithError(err).Error("request failed")
		writeJSON(w, status, errorBody("internal error"))
	case errors.As(err, &loadErr):
		h.log.WithError(err).Warn("design could not be loaded")
		writeJSON(w, status, errorBody("cannot load design "+loadErr.Path))
	case errors.Is(err, application.ErrNotFound):
		writeJSON(w, status, errorBody("design not found"))
	default:
		writeJSON(w, status, errorBody(err.Error()))
	}
}

func rideParam(q url.Values) (domain.RideType, error) {
	raw := q.Get("ride")
	if raw == "" {
		return 0, &application.ValidationError{Field: "ride", Message: "ride is required"}
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v > 255 {
		return 0, &application.ValidationError{Field: "ride", Message: "ride must be a number between 0 and 255"}
	}
	return domain.RideType(v), nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &application.ValidationError{Field: name, Message: name + " must be a number"}
	}
	return v, nil
}

func boolParam(q url.Values, name string) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &application.ValidationError{Field: name, Message: name + " must be true or false"}
	}
	return v, nil
}
