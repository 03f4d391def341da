package tzmiss

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/repository"
	"github.com/f1board/f1board/pkg/schedule"
)

const (
	defaultBufferSize = 64
	writeTimeout      = 5 * time.Second
)

type RecorderOption func(*Recorder)

func WithBufferSize(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.bufferSize = n
		}
	}
}

func WithLogger(l *log.Logger) RecorderOption {
	return func(r *Recorder) {
		r.log = l
	}
}

func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		r.now = now
	}
}

// Recorder persists unresolved diagnostics in the background so that
// timezone resolution never waits for the database. When the buffer is full
// new diagnostics are dropped.
type Recorder struct {
	conn       repository.Querier
	bufferSize int
	queue      chan schedule.Unresolved
	stopChan   chan struct{}
	wg         sync.WaitGroup
	dropped    atomic.Int64
	stored     atomic.Int64
	log        *log.Logger
	now        func() time.Time
}

var _ schedule.Reporter = (*Recorder)(nil)

func NewRecorder(conn repository.Querier, opts ...RecorderOption) *Recorder {
	ret := &Recorder{
		conn:       conn,
		bufferSize: defaultBufferSize,
		stopChan:   make(chan struct{}),
		log:        log.Default().Named("tzmiss"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.queue = make(chan schedule.Unresolved, ret.bufferSize)
	return ret
}

func (r *Recorder) Start() {
	r.wg.Add(1)
	go r.run()
}

// Stop writes the queued diagnostics and waits for the worker to finish.
func (r *Recorder) Stop() {
	close(r.stopChan)
	r.wg.Wait()
	r.log.Debug("Recorder stopped",
		log.Int64("stored", r.stored.Load()),
		log.Int64("dropped", r.dropped.Load()))
}

func (r *Recorder) ReportUnresolved(_ context.Context, u schedule.Unresolved) {
	select {
	case r.queue <- u:
	default:
		r.dropped.Add(1)
		r.log.Warn("diagnostic buffer full, dropping entry",
			log.String("country", u.Country),
			log.String("location", u.Location))
	}
}

func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

func (r *Recorder) Stored() int64 {
	return r.stored.Load()
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for {
		select {
		case u := <-r.queue:
			r.store(u)
		case <-r.stopChan:
			for {
				select {
				case u := <-r.queue:
					r.store(u)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) store(u schedule.Unresolved) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if _, err := Upsert(ctx, r.conn, u, r.now()); err != nil {
		r.log.Error("could not store diagnostic", log.ErrorField(err))
		return
	}
	r.stored.Add(1)
}
