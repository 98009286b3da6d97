package game

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RunStats summarises a single session. Counters are updated by Tick while
// the snake lock is held; read them only once the tick loop has returned.
type RunStats struct {
	SessionID      string    `json:"sessionId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Ticks          int       `json:"ticks"`
	AutopilotTicks int       `json:"autopilotTicks"`
	Score          int       `json:"score"`
	Cause          string    `json:"cause"`
}

func NewRunStats(start time.Time) *RunStats {
	return &RunStats{
		SessionID: uuid.New().String(),
		StartTime: start,
	}
}

// Finish fills in the closing fields from the final snapshot
func (rs *RunStats) Finish(end time.Time, final Snapshot) {
	rs.EndTime = end
	rs.Score = final.Score
	rs.Cause = final.Cause.String()
}

// Duration returns how long the session lasted
func (rs *RunStats) Duration() time.Duration {
	return rs.EndTime.Sub(rs.StartTime)
}

func (rs *RunStats) JSON() string {
	data, err := json.Marshal(rs)
	if err != nil {
		return "{}"
	}
	return string(data)
}
