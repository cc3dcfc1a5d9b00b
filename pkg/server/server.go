package server

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/davidwl/keyhint/internal/logger"
	"github.com/davidwl/keyhint/pkg/config"
	"github.com/davidwl/keyhint/pkg/keyconfig"
	"github.com/davidwl/keyhint/pkg/rank"
	"github.com/vmihailenco/msgpack/v5"
)

// slog is the package logger; server responses own stdout, so all logging
// goes to stderr with an ipc prefix.
var slog = logger.New("ipc")

// LoadFunc re-obtains the raw config text for reload requests.
type LoadFunc func() (string, error)

// Server handles the IPC for keybinding filtering
type Server struct {
	meta   *keyconfig.Metadata
	cfg    *config.Config
	reload LoadFunc
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a filter server using stdin/stdout for IPC
func NewServer(meta *keyconfig.Metadata, cfg *config.Config, reload LoadFunc) *Server {
	return NewServerIO(meta, cfg, reload, os.Stdin, os.Stdout)
}

// NewServerIO creates a filter server over arbitrary streams. Tests use
// in-memory buffers here.
func NewServerIO(meta *keyconfig.Metadata, cfg *config.Config, reload LoadFunc, r io.Reader, w io.Writer) *Server {
	return &Server{
		meta:   meta,
		cfg:    cfg,
		reload: reload,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests and blocks until the input
// stream closes.
func (s *Server) Start() error {
	slog.Debug("Starting filter server.")
	s.send(StatusResponse{Status: "ready", Entries: s.meta.Len()})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			slog.Errorf("Decoding request: %v", err)
			s.send(RequestError{Error: "invalid msgpack request", Code: 400})
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "":
		s.handleFilter(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Entries: s.meta.Len()})
	case "reload":
		s.handleReload(req)
	default:
		slog.Warnf("Unknown action: %s", req.Action)
		s.send(RequestError{ID: req.ID, Error: "unknown action: " + req.Action, Code: 400})
	}
}

// handleFilter runs one complete filter pass and responds with the ranked
// entries, spans included.
func (s *Server) handleFilter(req Request) {
	if len(req.Query) > s.cfg.Server.MaxQueryLen {
		s.send(RequestError{ID: req.ID, Error: "query exceeds maximum length", Code: 400})
		slog.Debug("Query too long in request", "len", len(req.Query))
		return
	}

	limit := req.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	mods := keyconfig.Modifiers{
		Shift:   req.Mods.Shift,
		Control: req.Mods.Control,
		Alt:     req.Mods.Alt,
		Meta:    req.Mods.Meta,
	}

	start := time.Now()
	ranked := rank.Filter(s.meta, req.Query, mods)
	elapsed := time.Since(start)

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	entries := make([]EntryPayload, len(ranked))
	for i, e := range ranked {
		entries[i] = EntryPayload{
			Group:            e.Group,
			Description:      e.Description,
			Keys:             e.Keys,
			GroupSpans:       spanPayloads(e.GroupSpans),
			DescriptionSpans: spanPayloads(e.DescriptionSpans),
		}
	}

	s.send(FilterResponse{
		ID:        req.ID,
		Entries:   entries,
		Count:     len(entries),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleReload re-fetches the config text and swaps in a fresh entry set
func (s *Server) handleReload(req Request) {
	if s.reload == nil {
		s.send(StatusResponse{ID: req.ID, Status: "error", Error: "no reload source configured"})
		return
	}
	text, err := s.reload()
	if err != nil {
		slog.Errorf("Reloading config text: %v", err)
		s.send(StatusResponse{ID: req.ID, Status: "error", Error: err.Error()})
		return
	}
	meta, err := keyconfig.Parse(text)
	if err != nil {
		slog.Errorf("Parsing reloaded config: %v", err)
		s.send(StatusResponse{ID: req.ID, Status: "error", Error: err.Error()})
		return
	}
	s.meta = meta
	slog.Debugf("Reloaded %d entries", meta.Len())
	s.send(StatusResponse{ID: req.ID, Status: "ok", Entries: meta.Len()})
}

func spanPayloads(spans []keyconfig.Span) []SpanPayload {
	if spans == nil {
		return nil
	}
	out := make([]SpanPayload, len(spans))
	for i, sp := range spans {
		out[i] = SpanPayload{Text: sp.Text, Matched: sp.Matched}
	}
	return out
}

// send marshals the given response and writes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		slog.Errorf("Encoding response: %v", err)
	}
}
