// internal/recorder/sql.go
package recorder

const initSchemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TEXT NOT NULL,
    drone_addr TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS frames (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id INTEGER NOT NULL REFERENCES sessions(id),
    sent_at    TEXT NOT NULL,
    counter    INTEGER NOT NULL,
    payload    BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_frames_session ON frames(session_id);`

const (
	insertSessionSQL = `
INSERT INTO sessions (started_at,
                      drone_addr)
VALUES (?, ?)`

	insertFrameSQL = `
INSERT INTO frames (session_id,
                    sent_at,
                    counter,
                    payload)
VALUES (?, ?, ?, ?)`

	countFramesSQL = `
SELECT COUNT(*)
FROM frames
WHERE
    session_id = ?`
)
