package kit

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func RunHTTPServer(addr string, h http.Handler, log *zap.Logger, out io.Writer, ready string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	return Serve(ln, h, log, out, ready)
}

func Serve(ln net.Listener, h http.Handler, log *zap.Logger, out io.Writer, ready string) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          zap.NewStdLog(log),
	}

	log.Info("http server listening", zap.String("addr", ln.Addr().String()))
	if out != nil && ready != "" {
		_, _ = fmt.Fprintln(out, ready)
	}

	return srv.Serve(ln)
}
