package store

import (
	"context"
	"log"

	"github.com/glowdesk/salon-manager/internal/metrics"
)

// MirrorWriter is the slice of the mirror client the store needs.
type MirrorWriter interface {
	IsConfigured() bool
	Write(ctx context.Context, tab string, records any) error
}

type pushJob struct {
	tab  string
	data any
}

// Pusher forwards saved tables to the mirror off the request path.
// Failures are logged and never retried; a full queue drops the push
// rather than block a save.
type Pusher struct {
	mirror MirrorWriter
	queue  chan pushJob
}

func NewPusher(mirror MirrorWriter) *Pusher {
	p := &Pusher{
		mirror: mirror,
		queue:  make(chan pushJob, 100),
	}
	go p.worker()
	return p
}

func (p *Pusher) worker() {
	for job := range p.queue {
		if err := p.mirror.Write(context.Background(), job.tab, job.data); err != nil {
			metrics.MirrorPushFailures.Inc()
			log.Printf("mirror push failed for %s: %v", job.tab, err)
		}
	}
}

func (p *Pusher) Enqueue(tab string, data any) {
	if p == nil || !p.mirror.IsConfigured() {
		return
	}
	select {
	case p.queue <- pushJob{tab: tab, data: data}:
	default:
		log.Printf("mirror push queue full, dropping %s", tab)
	}
}
