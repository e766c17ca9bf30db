package telemetry

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Fanout records every phase on several telemetry backends at once.
type Fanout struct {
	backends []ports.Telemetry
}

// NewFanout creates a Fanout over the given backends.
func NewFanout(backends ...ports.Telemetry) *Fanout {
	return &Fanout{backends: backends}
}

// Record starts the phase on every backend. The returned context carries the
// combined vertex.
func (f *Fanout) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	vertices := make(multiVertex, 0, len(f.backends))
	for _, backend := range f.backends {
		var v ports.Vertex
		ctx, v = backend.Record(ctx, name, opts...)
		vertices = append(vertices, v)
	}
	return ports.ContextWithVertex(ctx, vertices), vertices
}

// Close closes every backend and joins their errors.
func (f *Fanout) Close() error {
	var errs []error
	for _, backend := range f.backends {
		if err := backend.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type multiVertex []ports.Vertex

func (m multiVertex) Stdout() io.Writer {
	writers := make([]io.Writer, 0, len(m))
	for _, v := range m {
		writers = append(writers, v.Stdout())
	}
	return io.MultiWriter(writers...)
}

func (m multiVertex) Log(level domain.LogLevel, msg string) {
	for _, v := range m {
		v.Log(level, msg)
	}
}

func (m multiVertex) Complete(err error) {
	for _, v := range m {
		v.Complete(err)
	}
}

func (m multiVertex) Cached() {
	for _, v := range m {
		v.Cached()
	}
}
