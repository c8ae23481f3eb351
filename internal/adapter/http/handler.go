package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"ecosim/internal/app/observe"
	"ecosim/internal/app/ports"
	"ecosim/internal/app/replay"
	"ecosim/internal/app/scenarios"
	"ecosim/internal/app/simulation"
	"ecosim/internal/app/status"
	"ecosim/internal/domain/ecology"
)

type Handler struct {
	CreateUC    simulation.CreateUseCase
	TurnUC      simulation.TurnUseCase
	DeleteUC    simulation.DeleteUseCase
	ListUC      simulation.ListUseCase
	ObserveUC   observe.UseCase
	StatusUC    status.UseCase
	ReplayUC    replay.UseCase
	ScenariosUC scenarios.UseCase
	KPI         kpiSnapshotProvider
	// AllowOrigins is a comma-separated CORS allow list; empty allows any.
	AllowOrigins string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(newCORSPolicy(h.AllowOrigins).middleware())

	api := s.Group("/api")
	api.POST("/worlds", h.createWorld)
	api.GET("/worlds", h.listWorlds)
	api.GET("/worlds/:id", h.observe)
	api.DELETE("/worlds/:id", h.deleteWorld)
	api.POST("/worlds/:id/turn", h.turn)
	api.GET("/worlds/:id/status", h.status)
	api.GET("/worlds/:id/replay", h.replay)
	api.GET("/scenarios", h.scenarioIndex)
	api.GET("/scenarios/:name", h.scenarioFile)

	s.GET("/ops/kpi", h.kpi)
}

type createWorldRequest struct {
	Name         string            `json:"name"`
	Rows         []string          `json:"rows"`
	Legend       map[string]string `json:"legend"`
	Policy       string            `json:"policy"`
	Seed         *uint64           `json:"seed"`
	Scenario     string            `json:"scenario"`
	ScenarioName string            `json:"scenario_name"`
}

type turnRequest struct {
	Turns int `json:"turns"`
}

func (h Handler) createWorld(c context.Context, ctx *app.RequestContext) {
	var body createWorldRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CreateUC.Execute(c, simulation.CreateRequest{
		Name:           body.Name,
		Rows:           body.Rows,
		Legend:         body.Legend,
		Policy:         body.Policy,
		Seed:           body.Seed,
		ScenarioSource: body.Scenario,
		ScenarioName:   body.ScenarioName,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) listWorlds(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ListUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) turn(c context.Context, ctx *app.RequestContext) {
	var body turnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if raw := string(ctx.Query("turns")); raw != "" && body.Turns == 0 {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "turns must be an integer")
			return
		}
		body.Turns = n
	}

	resp, err := h.TurnUC.Execute(c, simulation.TurnRequest{WorldID: ctx.Param("id"), Turns: body.Turns})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c, observe.Request{
		WorldID:   ctx.Param("id"),
		Separator: string(ctx.Query("sep")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{WorldID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	fromTurn, _ := strconv.ParseInt(string(ctx.Query("from_turn")), 10, 64)
	toTurn, _ := strconv.ParseInt(string(ctx.Query("to_turn")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		WorldID:  ctx.Param("id"),
		Limit:    limit,
		FromTurn: fromTurn,
		ToTurn:   toTurn,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteWorld(c context.Context, ctx *app.RequestContext) {
	purge, _ := strconv.ParseBool(string(ctx.Query("purge_log")))
	if err := h.DeleteUC.Execute(c, simulation.DeleteRequest{WorldID: ctx.Param("id"), PurgeLog: purge}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.SetStatusCode(consts.StatusNoContent)
}

func (h Handler) scenarioIndex(c context.Context, ctx *app.RequestContext) {
	entries, err := h.ScenariosUC.Index(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"scenarios": entries})
}

func (h Handler) scenarioFile(c context.Context, ctx *app.RequestContext) {
	name := strings.TrimSpace(ctx.Param("name"))
	if name == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_scenario_name", "invalid scenario name")
		return
	}

	b, err := h.ScenariosUC.File(c, name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", b)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	var cfgErr *ecology.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_world_config", err.Error())
	case errors.Is(err, simulation.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, ports.ErrInvalidInput):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
