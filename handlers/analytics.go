package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

// openStatuses are the lifecycle stages that still count toward the
// active pipeline.
var openStatuses = []services.Status{
	services.StatusDraft,
	services.StatusEngineeringReview,
	services.StatusReady,
	services.StatusSubmitted,
}

// HandleAnalytics reports quotation counts by status, the win rate over
// decided quotations and the total revenue still in the pipeline.
func HandleAnalytics(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("quotations")
		if err != nil {
			log.Printf("analytics: could not fetch quotations: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		counts := make(map[string]int, len(services.AllStatuses))
		for _, status := range services.AllStatuses {
			counts[string(status)] = 0
		}
		entries := make([]services.PipelineEntry, 0, len(records))
		for _, record := range records {
			status, err := services.ParseStatus(record.GetString("status"))
			if err != nil {
				log.Printf("analytics: skipping quotation %s: %v", record.Id, err)
				continue
			}
			counts[string(status)]++
			entries = append(entries, services.PipelineEntry{
				Status:       status,
				TotalRevenue: record.GetFloat("total_revenue"),
			})
		}

		won := counts[string(services.StatusWon)]
		lost := counts[string(services.StatusLost)]

		return e.JSON(http.StatusOK, map[string]any{
			"counts_by_status": counts,
			"won":              won,
			"lost":             lost,
			"win_rate":         services.CalcWinRate(won, lost),
			"pipeline_value":   services.CalcPipelineValue(entries, openStatuses),
		})
	}
}
