package httpadapter

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Renderers read tiles and chunks with GET and post observer positions and
// key-object completions as JSON, so only these two verbs and Content-Type are
// allowed.
const (
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
	corsMaxAge       = "600"
)

type corsPolicy struct {
	any     bool
	origins map[string]bool
}

// newCORSPolicy allows the listed origins. An empty list or "*" allows every
// origin.
func newCORSPolicy(origins []string) corsPolicy {
	p := corsPolicy{origins: map[string]bool{}}
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			p.any = true
		} else if o != "" {
			p.origins[o] = true
		}
	}
	if len(p.origins) == 0 {
		p.any = true
	}
	return p
}

func (p corsPolicy) allowOrigin(origin string) (string, bool) {
	if p.any {
		return "*", true
	}
	if p.origins[origin] {
		return origin, true
	}
	return "", false
}

// apply writes the CORS response headers and reports whether the request
// origin is allowed. Requests without an Origin header are not cross-origin
// and always pass.
func (p corsPolicy) apply(ctx *app.RequestContext) bool {
	origin := string(ctx.GetHeader("Origin"))
	allowed, ok := p.allowOrigin(origin)
	if !ok {
		return origin == ""
	}
	ctx.Response.Header.Set("Access-Control-Allow-Origin", allowed)
	if allowed != "*" {
		ctx.Response.Header.Set("Vary", "Origin")
	}
	ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	ctx.Response.Header.Set("Access-Control-Max-Age", corsMaxAge)
	return true
}

func (p corsPolicy) middleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		ok := p.apply(ctx)
		if string(ctx.Method()) == consts.MethodOptions {
			if !ok {
				ctx.AbortWithStatus(consts.StatusForbidden)
				return
			}
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}
