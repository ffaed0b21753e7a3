// Command tcplistener frames requests and logs what it parsed without
// routing them. Every connection is answered with 200 and an empty body.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/dchest/uniuri"

	"github.com/Brownie44l1/httpd/internal/config"
	"github.com/Brownie44l1/httpd/internal/request"
	"github.com/Brownie44l1/httpd/internal/response"
	"github.com/Brownie44l1/httpd/internal/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tcplistener: %v\n", err)
		os.Exit(2)
	}
	logger := server.NewDefaultLogger(cfg.LogLevel)

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Error("listen failed", server.Field{Key: "error", Value: err})
		os.Exit(1)
	}
	defer listener.Close()
	logger.Info("listening", server.Field{Key: "addr", Value: listener.Addr().String()})

	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Warn("accept failed", server.Field{Key: "error", Value: err})
			continue
		}

		go handleConnection(conn, cfg, logger.With(server.Field{Key: "conn_id", Value: uniuri.NewLen(8)}))
	}
}

func handleConnection(conn net.Conn, cfg *config.Config, logger server.Logger) {
	defer conn.Close()

	req, err := request.RequestFromReader(conn, cfg.IdleTimeout)
	if err != nil {
		logger.Warn("framing failed", server.Field{Key: "error", Value: err})
		return
	}

	fields := []server.Field{
		{Key: "method", Value: req.Method.String()},
		{Key: "path", Value: req.Path},
		{Key: "version", Value: req.Version},
		{Key: "body_bytes", Value: len(req.Body)},
	}
	for _, h := range req.Headers.All() {
		fields = append(fields, server.Field{Key: "header." + h.Key, Value: h.Value})
	}
	logger.Info("request framed", fields...)

	if err := response.NewWriter(conn).Send(response.Empty(response.StatusOK), req.Headers); err != nil {
		logger.Warn("write failed", server.Field{Key: "error", Value: err})
	}
}
