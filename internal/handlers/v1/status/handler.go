package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/transfer-server/internal/logging"
)

// Check reports why the server cannot take work, or nil when it can.
type Check func() error

type Handler struct {
	checks []Check
}

func NewHandler(checks ...Check) Handler {
	return Handler{checks: checks}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	for _, check := range h.checks {
		if err := check(); err != nil {
			logData.AddData("unready", err.Error())
			w.WriteHeader(http.StatusServiceUnavailable)
			return err
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
