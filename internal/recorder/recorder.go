// internal/recorder/recorder.go
package recorder

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/klaussner/quadlink/internal/packet"
)

// Recorder appends every transmitted frame to a sqlite session log for
// post-flight review. Writes happen on a background goroutine behind a
// buffered channel; Record never blocks, so the 50 ms transmit cadence
// is never in the write path. Frames are dropped (and counted) if the
// writer falls behind.
type Recorder struct {
	db        *sql.DB
	sessionID int64

	in   chan frameRow
	done chan struct{}

	frames   atomic.Uint64
	dropped  atomic.Uint64
	writeErr atomic.Value // last insert error, if any
}

type frameRow struct {
	at    time.Time
	frame packet.Frame
}

// queueDepth buffers ~3s of frames at the 50 ms cadence.
const queueDepth = 64

// Open creates or opens the database at path, starts a new session and
// the background writer.
func Open(path, droneAddr string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL", path))
	if err != nil {
		return nil, fmt.Errorf("recorder: opening %s: %w", path, err)
	}

	if _, err = db.Exec(initSchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("recorder: initializing schema: %w", err)
	}

	res, err := db.Exec(insertSessionSQL, time.Now().UTC().Format(time.RFC3339), droneAddr)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("recorder: creating session: %w", err)
	}
	sessionID, err := res.LastInsertId()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("recorder: session id: %w", err)
	}

	r := &Recorder{
		db:        db,
		sessionID: sessionID,
		in:        make(chan frameRow, queueDepth),
		done:      make(chan struct{}),
	}
	go r.writeLoop()

	return r, nil
}

// SessionID identifies the session rows written by this recorder.
func (r *Recorder) SessionID() int64 {
	return r.sessionID
}

// Record queues one transmitted frame. Never blocks; a full queue
// increments the drop counter instead.
func (r *Recorder) Record(at time.Time, f packet.Frame) {
	select {
	case r.in <- frameRow{at: at, frame: f}:
	default:
		r.dropped.Add(1)
	}
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() uint64 {
	return r.frames.Load()
}

// Dropped returns the number of frames lost to a full queue.
func (r *Recorder) Dropped() uint64 {
	return r.dropped.Load()
}

// Close drains the queue, stops the writer and closes the database.
// Returns the last insert error seen, if any.
func (r *Recorder) Close() error {
	close(r.in)
	<-r.done

	err, _ := r.writeErr.Load().(error)
	if cerr := r.db.Close(); err == nil {
		err = cerr
	}
	return err
}

func (r *Recorder) writeLoop() {
	defer close(r.done)

	stmt, err := r.db.Prepare(insertFrameSQL)
	if err != nil {
		r.writeErr.Store(fmt.Errorf("recorder: preparing insert: %w", err))
		for range r.in {
			r.dropped.Add(1)
		}
		return
	}
	defer stmt.Close()

	for row := range r.in {
		_, err := stmt.Exec(
			r.sessionID,
			row.at.UTC().Format(time.RFC3339Nano),
			row.frame.Counter(),
			row.frame[:],
		)
		if err != nil {
			r.writeErr.Store(fmt.Errorf("recorder: inserting frame: %w", err))
			r.dropped.Add(1)
			continue
		}
		r.frames.Add(1)
	}
}
