package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alexanderramin/driveline/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var (
		addr      string
		redisAddr string
		rateLimit int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recommendation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cache httpapi.Cache
			if redisAddr != "" {
				cache = httpapi.NewRedisCache(redisAddr)
			}

			server := httpapi.NewServer(app.Vehicles, app.Leads, app.Orchestrator, cache, os.Stderr)
			limiter := httpapi.NewRateLimiter(rateLimit, time.Minute)
			defer limiter.Stop()

			handler := httpapi.RateLimitMiddleware(limiter, server.Handler())
			fmt.Printf("Listening on %s\n", addr)
			return http.ListenAndServe(addr, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the response cache (empty = in-process cache)")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 60, "Requests per minute per client IP")

	return cmd
}
