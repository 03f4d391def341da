package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/calendar"
	"github.com/f1board/f1board/pkg/display"
	"github.com/f1board/f1board/pkg/model"
	"github.com/f1board/f1board/pkg/payload"
	"github.com/f1board/f1board/pkg/repository"
	"github.com/f1board/f1board/pkg/repository/tzmiss"
	"github.com/f1board/f1board/pkg/schedule"
)

const maxBodySize = 4 << 20

var tracer = otel.Tracer("server")

type apiOption func(*api)

func withPool(conn repository.Querier) apiOption {
	return func(a *api) {
		a.conn = conn
	}
}

func withExporter(e *calendar.Exporter) apiOption {
	return func(a *api) {
		a.exporter = e
	}
}

func withLogger(l *log.Logger) apiOption {
	return func(a *api) {
		a.log = l
	}
}

// api serves the HTTP endpoints. conn is nil when no database is configured.
type api struct {
	builder  *schedule.Builder
	exporter *calendar.Exporter
	conn     repository.Querier
	log      *log.Logger
}

func newAPI(builder *schedule.Builder, opts ...apiOption) *api {
	ret := &api{
		builder: builder,
		log:     log.Default().Named("api"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.exporter == nil {
		ret.exporter = calendar.NewExporter(calendar.WithTables(builder.Tables()))
	}
	return ret
}

func (a *api) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/races/schedule", a.handleSchedule)
	mux.HandleFunc("POST /v1/races/calendar", a.handleCalendar)
	mux.HandleFunc("POST /v1/races/check", a.handleCheck)
	mux.HandleFunc("POST /v1/drivers/display", a.handleDrivers)
	mux.HandleFunc("POST /v1/constructors/display", a.handleConstructors)
	mux.HandleFunc("GET /v1/timezones", a.handleTimezones)
	mux.HandleFunc("GET /v1/unresolved", a.handleUnresolved)
	mux.HandleFunc("DELETE /v1/unresolved/{id}", a.handleDeleteUnresolved)
	mux.HandleFunc("GET /healthz", a.handleHealth)
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type checkResponse struct {
	Total      int                   `json:"total"`
	Unresolved []schedule.Unresolved `json:"unresolved"`
}

func (a *api) handleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "schedule")
	defer span.End()

	mode, err := schedule.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return
	}
	data, err := readBody(w, r)
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return
	}
	race, err := payload.DecodeRace(data)
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(attribute.Int("race.id", race.ID), attribute.String("mode", string(mode)))

	view, err := a.builder.Build(ctx, race, mode, r.URL.Query().Get("tz"))
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(attribute.String("track.zone", view.TrackZone))
	a.writeJSON(w, http.StatusOK, view)
}

func (a *api) handleCalendar(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "calendar")
	defer span.End()

	races, ok := a.decodeRaces(w, r, span)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="f1board.ics"`)
	if err := a.exporter.Write(w, races...); err != nil {
		span.RecordError(err)
		a.log.Error("could not write calendar", log.ErrorField(err))
	}
}

func (a *api) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "check")
	defer span.End()

	races, ok := a.decodeRaces(w, r, span)
	if !ok {
		return
	}
	unresolved := a.builder.Resolver().ResolveAll(ctx, races)
	span.SetAttributes(
		attribute.Int("races", len(races)),
		attribute.Int("unresolved", len(unresolved)))
	a.writeJSON(w, http.StatusOK, checkResponse{Total: len(races), Unresolved: unresolved})
}

func (a *api) handleDrivers(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "drivers.display")
	defer span.End()

	data, err := readBody(w, r)
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return
	}
	drivers, err := payload.DecodeDrivers(data)
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(attribute.Int("drivers", len(drivers)))
	a.writeJSON(w, http.StatusOK, lo.Map(drivers, func(d *model.Driver, _ int) display.DriverCard {
		return display.NewDriverCard(d)
	}))
}

func (a *api) handleConstructors(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "constructors.display")
	defer span.End()

	data, err := readBody(w, r)
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return
	}
	constructors, err := payload.DecodeConstructors(data)
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(attribute.Int("constructors", len(constructors)))
	a.writeJSON(w, http.StatusOK,
		lo.Map(constructors, func(c *model.Constructor, _ int) display.ConstructorCard {
			return display.NewConstructorCard(c)
		}))
}

func (a *api) handleTimezones(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, a.builder.Resolver().Table().Entries())
}

func (a *api) handleUnresolved(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "unresolved.list")
	defer span.End()

	if a.conn == nil {
		a.fail(w, span, http.StatusServiceUnavailable, errors.New("no database configured"))
		return
	}
	entries, err := tzmiss.LoadAll(ctx, a.conn)
	if err != nil {
		a.fail(w, span, http.StatusInternalServerError, err)
		return
	}
	a.writeJSON(w, http.StatusOK, entries)
}

func (a *api) handleDeleteUnresolved(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "unresolved.delete")
	defer span.End()

	if a.conn == nil {
		a.fail(w, span, http.StatusServiceUnavailable, errors.New("no database configured"))
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, fmt.Errorf("invalid id %q", r.PathValue("id")))
		return
	}
	err = tzmiss.DeleteByID(ctx, a.conn, id)
	switch {
	case errors.Is(err, tzmiss.ErrNotFound):
		a.fail(w, span, http.StatusNotFound, err)
	case err != nil:
		a.fail(w, span, http.StatusInternalServerError, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := a.conn.(interface {
		Ping(ctx context.Context) error
	}); ok {
		if err := p.Ping(r.Context()); err != nil {
			a.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) decodeRaces(
	w http.ResponseWriter, r *http.Request, span trace.Span,
) ([]*model.Race, bool) {
	data, err := readBody(w, r)
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return nil, false
	}
	races, err := payload.DecodeRaces(data)
	if err != nil {
		a.fail(w, span, http.StatusBadRequest, err)
		return nil, false
	}
	return races, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
}

func (a *api) fail(w http.ResponseWriter, span trace.Span, status int, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if status >= http.StatusInternalServerError {
		a.log.Error("request failed", log.Int("status", status), log.ErrorField(err))
	} else {
		a.log.Debug("request rejected", log.Int("status", status), log.ErrorField(err))
	}
	a.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Warn("could not encode response", log.ErrorField(err))
	}
}
