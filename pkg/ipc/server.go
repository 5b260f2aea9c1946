package ipc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/corrigo-dev/corrigo/internal/config"
	"github.com/corrigo-dev/corrigo/pkg/bigramspell"
	"github.com/corrigo-dev/corrigo/pkg/spell"
	"github.com/corrigo-dev/corrigo/pkg/tokenize"
)

// Server answers CorrectionRequest/StatsRequest messages over stdin/stdout
// using a loaded spell.Spell.
type Server struct {
	sp         *spell.Spell
	cfg        *config.Config
	configPath string

	decoder      *msgpack.Decoder
	writeMutex   sync.Mutex
	requestCount int64
}

// NewServer wraps sp for MessagePack IPC, reloading cfg from configPath
// periodically so a long-running daemon picks up an edited default top-k
// setting without a restart.
func NewServer(sp *spell.Spell, cfg *config.Config, configPath string) *Server {
	return &Server{
		sp:         sp,
		cfg:        cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(os.Stdin),
	}
}

// Start reads requests from stdin until EOF, answering each on stdout.
func (s *Server) Start() error {
	log.Debug("starting MessagePack correction server")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("client disconnected")
				return nil
			}
			continue
		}
	}
}

func (s *Server) processRequest() error {
	s.requestCount++
	if s.configPath != "" && s.requestCount%100 == 0 {
		s.reloadConfig()
	}

	var raw map[string]interface{}
	if err := s.decoder.Decode(&raw); err != nil {
		return err
	}

	id, _ := raw["id"].(string)
	// A StatsRequest carries no "t" field; its absence is how a client
	// asks for hot-cache counters instead of a correction.
	text, hasText := raw["t"].(string)
	if !hasText {
		return s.sendStats(id)
	}

	limit := s.cfg.Engine.DefaultTopK
	if l, ok := raw["l"].(int64); ok && l > 0 {
		limit = int(l)
	} else if lf, ok := raw["l"].(float64); ok && lf > 0 {
		limit = int(lf)
	}

	if text == "" {
		return s.sendError(id, "empty text", 400)
	}

	start := time.Now()
	corrections := bigramspell.New(s.sp, limit).Run(tokenize.NewFromString(text))
	elapsed := time.Since(start)

	out := make([]Correction, len(corrections))
	for i, c := range corrections {
		out[i] = Correction{Word: c.Original, Suggestion: c.Suggestion}
	}

	return s.sendResponse(&CorrectionResponse{
		ID:          id,
		Corrections: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) reloadConfig() {
	newCfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("failed to reload config, keeping current: %v", err)
		return
	}
	s.cfg = newCfg
	log.Debugf("config reloaded from %s", s.configPath)
}

func (s *Server) sendStats(id string) error {
	stats := s.sp.HotCacheStats()
	if stats == nil {
		stats = map[string]int64{}
	}
	return s.sendResponse(&StatsResponse{ID: id, Entries: stats})
}

func (s *Server) sendError(id, message string, code int) error {
	return s.sendResponse(&ErrorResponse{ID: id, Error: message, Code: code})
}

// sendResponse encodes resp to a buffer and writes it to stdout as one
// atomic write, so two goroutines answering concurrently never interleave
// partial frames.
func (s *Server) sendResponse(resp any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(resp); err != nil {
		return fmt.Errorf("ipc: encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("ipc: write response: %w", err)
	}
	return nil
}
