package server

import (
	"fmt"
	"net"
	"runtime/debug"
	"time"

	"github.com/dchest/uniuri"

	"github.com/Brownie44l1/httpd/internal/httperr"
	"github.com/Brownie44l1/httpd/internal/request"
	"github.com/Brownie44l1/httpd/internal/response"
)

const connIDLength = 8

// serveConn handles the single request of one connection and closes it.
// Any failure drops the connection without a response.
func (s *Server) serveConn(conn net.Conn) {
	defer s.conns.Done()
	defer conn.Close()

	start := time.Now()
	s.metrics.ConnectionsTotal.Add(1)
	s.metrics.ActiveConnections.Add(1)
	defer s.metrics.ActiveConnections.Add(-1)

	id := uniuri.NewLen(connIDLength)
	log := s.logger.With(Field{"conn_id", id}, Field{"remote", conn.RemoteAddr().String()})

	defer func() {
		if r := recover(); r != nil {
			s.metrics.RecordAbort()
			log.Error("connection panic",
				Field{"panic", fmt.Sprint(r)},
				Field{"stack", string(debug.Stack())},
			)
		}
	}()

	w, err := s.handleConn(conn, id, log)
	if err != nil {
		s.metrics.RecordAbort()
		kind := "unclassified"
		if k, ok := httperr.KindOf(err); ok {
			kind = k.Error()
		}
		log.Warn("connection aborted", Field{"kind", kind}, Field{"error", err})
		return
	}

	s.metrics.RecordRequest(w.Status(), w.BytesWritten(), time.Since(start))
}

func (s *Server) handleConn(conn net.Conn, id string, log Logger) (*response.Writer, error) {
	if s.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
			return nil, httperr.Wrap(httperr.TcpStreamReading, err)
		}
	}

	req, err := request.RequestFromReader(conn, s.cfg.IdleTimeout)
	if err != nil {
		return nil, err
	}
	log.Debug("request framed",
		Field{"method", req.Method.String()},
		Field{"path", req.Path},
		Field{"body_bytes", len(req.Body)},
	)

	handler, rest := s.router.Match(req.Method, req.Path)
	ctx := &Context{
		Request: req,
		Rest:    rest,
		Files:   s.files,
		ConnID:  id,
		Logger:  log,
	}

	resp, err := chain(handler, s.middleware)(ctx)
	if err != nil {
		return nil, err
	}

	if s.cfg.WriteTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
			return nil, httperr.Wrap(httperr.WriteResponse, err)
		}
	}

	w := response.NewWriter(conn)
	if err := w.Send(resp, req.Headers); err != nil {
		return nil, err
	}
	return w, nil
}
