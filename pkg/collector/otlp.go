package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/clnrm/clnrm/pkg/clnrmerr"
	"github.com/clnrm/clnrm/pkg/httputil"
)

// Listener binds an OTLPSink to a localhost HTTP port, the "OTLP over
// HTTP... on a localhost port chosen by the core" ingestion path.
// Containers are pointed at it via OTEL_EXPORTER_OTLP_ENDPOINT. The wire
// format accepted here is a JSON array of spans in the wireSpan shape
// (§6's SpanData shape), not the full OTLP protobuf envelope: the corpus
// carries the OTLP SDK/exporter client stack but no collector-side
// protobuf receiver, so a JSON ingestion endpoint is the pragmatic
// receiver-side counterpart.
type Listener struct {
	sink *OTLPSink
	srv  *http.Server
	addr string
}

// NewListener starts an HTTP listener on an OS-assigned localhost port,
// routing POST /v1/traces/{scenario} bodies into sink.
func NewListener(sink *OTLPSink) (*Listener, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, clnrmerr.New(clnrmerr.KindBackend, "binding OTLP listener", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/traces/", func(w http.ResponseWriter, r *http.Request) {
		scenarioID := r.URL.Path[len("/v1/traces/"):]
		var spans []wireSpan
		if err := json.NewDecoder(r.Body).Decode(&spans); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, ws := range spans {
			sink.Ingest(scenarioID, ws.toData())
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	l := &Listener{sink: sink, srv: srv, addr: ln.Addr().String()}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Default().Error("OTLP listener stopped unexpectedly", "error", err)
		}
	}()

	return l, nil
}

// Endpoint returns the http://host:port base URL to pass as
// OTEL_EXPORTER_OTLP_ENDPOINT.
func (l *Listener) Endpoint() string {
	return fmt.Sprintf("http://%s", l.addr)
}

// Shutdown gracefully stops the listener using the same bounded-timeout
// pattern as the teacher's httputil.Serve.
func (l *Listener) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return httputil.ShutdownServer(shutdownCtx, l.srv)
}
