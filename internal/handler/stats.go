package handler

import (
	"net/http"

	"github.com/miniblog-dev/miniblog/internal/api"
	"github.com/miniblog-dev/miniblog/internal/utils"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	stats, err := h.stats.Get(c)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewStatsResponse(stats))
}
