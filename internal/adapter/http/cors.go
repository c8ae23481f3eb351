package httpadapter

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Methods used by the routes in RegisterRoutes.
const corsAllowMethods = "GET,POST,DELETE,OPTIONS"
const corsAllowHeaders = "Content-Type"
const corsMaxAge = "600"

// corsPolicy answers cross-origin requests for the API. An empty or "*"
// origin list allows any origin; otherwise only listed origins are echoed.
type corsPolicy struct {
	origins map[string]bool
}

func newCORSPolicy(allowOrigins string) corsPolicy {
	p := corsPolicy{}
	for _, o := range strings.Split(allowOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "" || o == "*" {
			continue
		}
		if p.origins == nil {
			p.origins = map[string]bool{}
		}
		p.origins[o] = true
	}
	return p
}

func (p corsPolicy) allowOrigin(origin string) (string, bool) {
	if p.origins == nil {
		return "*", true
	}
	if p.origins[origin] {
		return origin, true
	}
	return "", false
}

func (p corsPolicy) apply(ctx *app.RequestContext) {
	origin, ok := p.allowOrigin(string(ctx.GetHeader("Origin")))
	if !ok {
		return
	}
	ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
	if origin != "*" {
		ctx.Response.Header.Set("Vary", "Origin")
	}
	ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	ctx.Response.Header.Set("Access-Control-Max-Age", corsMaxAge)
}

func (p corsPolicy) middleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		p.apply(ctx)
		if string(ctx.Method()) == consts.MethodOptions {
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}
