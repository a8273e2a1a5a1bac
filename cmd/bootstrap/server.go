package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"pos-loyalty/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// ServerModule owns the gin engine and the HTTP listener.
var ServerModule = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Invoke(StartServer),
)

func NewEngine() *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()
	return gin.New()
}

// StartServer binds in OnStart so a taken port fails startup instead of
// surfacing later in a goroutine.
func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("loyalty API listening", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			logger.Info("draining HTTP connections")
			return srv.Shutdown(ctx)
		},
	})
}
