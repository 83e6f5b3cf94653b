package dashboard

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (drm *DashboardRoutesManager) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	membership, ok := drm.membership(w, r)
	if !ok {
		return
	}

	stats, err := drm.dashboardService.GetStats(r.Context(), membership.EstablishmentId)
	if err != nil {
		drm.respondServiceError(w, err, "Unable to compute dashboard stats")
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}
