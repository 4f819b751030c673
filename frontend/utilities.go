package frontend

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/datejp/dateinfo/utils/log"
)

type HeartbeatMessage struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func NewUtilityAPIHandlers(startTime time.Time) *utilityAPIHandlers {
	return &utilityAPIHandlers{startTime: startTime}
}

type utilityAPIHandlers struct {
	startTime time.Time
}

// Register adds the utility endpoints to the mux.
func (uah *utilityAPIHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/heartbeat", uah.heartbeat)
}

func (uah *utilityAPIHandlers) heartbeat(rw http.ResponseWriter, _ *http.Request) {
	msg := HeartbeatMessage{
		Status:  "ok",
		Version: Version,
		Uptime:  time.Since(uah.startTime).String(),
	}
	rw.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(rw).Encode(msg); err != nil {
		log.Error("failed to encode the heartbeat message: %v", err)
	}
}
