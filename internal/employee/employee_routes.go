package employee

import (
	"paytrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RouteOptions carries the optional middlewares the registry wires in
// depending on configuration. A nil entry means the concern is off.
type RouteOptions struct {
	Auth        gin.HandlerFunc
	Idempotency gin.HandlerFunc
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	opts RouteOptions,
) {
	emp := r.Group("/employee")
	if opts.Auth != nil {
		emp.Use(opts.Auth)
	}
	{
		emp.GET("/salary",
			middleware.RateLimitByIP(10, 20),
			handler.GetSalary,
		)
		emp.PUT("/add",
			middleware.RateLimitByIP(1, 5),
			handler.Add,
		)

		increase := []gin.HandlerFunc{middleware.RateLimitByIP(1, 5)}
		if opts.Idempotency != nil {
			increase = append(increase, opts.Idempotency)
		}
		increase = append(increase, handler.Increase)
		emp.POST("/increase", increase...)
	}
}
