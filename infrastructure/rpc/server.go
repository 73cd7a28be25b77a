package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bitbridge/application"
)

// CapabilitiesMethod is the reserved method answering with the catalog's
// method names instead of reaching the remote API.
const CapabilitiesMethod = "rpc/capabilities"

// maxFrameSize bounds a single inbound line; large create bodies fit well
// below this.
const maxFrameSize = 1 << 20

// Server reads newline-delimited JSON requests, dispatches each one in its
// own goroutine, and writes back correlated responses. Writes are
// serialized; everything else is lock-free because the dispatcher and the
// client behind it are read-only after construction.
type Server struct {
	dispatcher *application.Dispatcher
	in         io.Reader
	out        io.Writer

	writeMu sync.Mutex
}

// NewServer creates a server over the given reader/writer pair. Production
// wiring passes os.Stdin and os.Stdout.
func NewServer(dispatcher *application.Dispatcher, in io.Reader, out io.Writer) *Server {
	return &Server{
		dispatcher: dispatcher,
		in:         in,
		out:        out,
	}
}

// Serve processes frames until the input reaches EOF or the context is
// canceled. In-flight dispatches are allowed to finish before Serve returns.
func (s *Server) Serve(ctx context.Context) error {
	logger.Infof("serving %d methods", len(s.dispatcher.Methods()))

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	var inflight sync.WaitGroup
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())

		inflight.Add(1)
		go func() {
			defer inflight.Done()
			s.handleFrame(ctx, line)
		}()
	}
	inflight.Wait()

	if err := scanner.Err(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Server) handleFrame(ctx context.Context, frame []byte) {
	dispatchID := uuid.NewString()
	log := logger.WithField("dispatch_id", dispatchID)

	var request Request
	if err := json.Unmarshal(frame, &request); err != nil {
		log.Debugf("malformed frame: %v", err)
		s.write(Response{
			Success: false,
			Error:   &Error{Code: CodeBadRequest, Message: "malformed request frame"},
		})
		return
	}

	if request.Method == CapabilitiesMethod {
		s.write(NewResponse(request.ID, map[string]any{
			"methods": s.dispatcher.Methods(),
		}, nil))
		return
	}

	log.Debugf("dispatching %q", request.Method)
	result, err := s.dispatcher.Dispatch(ctx, request.Method, request.Params)
	if err != nil {
		log.Debugf("dispatch of %q failed: %v", request.Method, err)
	}
	s.write(NewResponse(request.ID, result, err))
}

func (s *Server) write(response Response) {
	payload, err := json.Marshal(response)
	if err != nil {
		logger.Errorf("failed to encode response: %v", err)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, _ = s.out.Write(append(payload, '\n'))
}
