// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown. Run blocks until the context is cancelled or Shutdown
// is called, then drains in-flight requests for at most the shutdown
// timeout.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(httpserver.WithAddr(":8080"), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
