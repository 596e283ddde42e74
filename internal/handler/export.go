package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "destination", "trip_start_date", "trip_end_date", "status",
	"day_number", "day_date", "position",
	"activity_id", "activity_name", "activity_time", "activity_location",
	"activity_type", "activity_notes",
}

// GetExport handles GET /export.
// It returns one row per activity across the caller's trips.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(ctx context.Context, req gen.GetExportRequestObject) (gen.GetExportResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.export.Export(ctx, who)
	if err != nil {
		return nil, err
	}

	if req.Params.Format != nil && *req.Params.Format == gen.Csv {
		return buildCSVResponse(rows)
	}
	return buildJSONResponse(rows), nil
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow) gen.GetExport200JSONResponse {
	out := make(gen.GetExport200JSONResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return out
}

// buildCSVResponse encodes domain rows as CSV and wraps them in the
// streaming response type.
func buildCSVResponse(rows []domain.ExportRow) (gen.GetExport200TextcsvResponse, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(rows)+1)
	records = append(records, csvHeaders)
	for _, r := range rows {
		records = append(records, domainRowToCSVRecord(r))
	}
	if err := w.WriteAll(records); err != nil {
		return gen.GetExport200TextcsvResponse{}, err
	}

	return gen.GetExport200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}, nil
}

// domainRowToGenRow maps a domain.ExportRow to the generated gen.ExportRow type.
// Day and activity fields are omitted for trips that have no activities.
func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	tripID, _ := uuid.Parse(r.TripID)

	row := gen.ExportRow{
		TripId:        tripID,
		TripName:      r.TripName,
		Destination:   r.Destination,
		TripStartDate: parseDate(r.TripStartDate),
		TripEndDate:   parseDate(r.TripEndDate),
		Status:        gen.TripStatus(r.Status),
	}
	if r.ActivityID == "" {
		return row
	}

	dayNumber, position := r.DayNumber, r.Position
	dayDate := parseDate(r.DayDate)
	activityType := gen.ActivityType(r.ActivityType)
	row.DayNumber = &dayNumber
	row.DayDate = &dayDate
	row.Position = &position
	row.ActivityId = &r.ActivityID
	row.ActivityName = &r.ActivityName
	row.ActivityType = &activityType
	row.ActivityTime = nilIfEmpty(r.ActivityTime)
	row.ActivityLocation = nilIfEmpty(r.ActivityLocation)
	row.ActivityNotes = nilIfEmpty(r.ActivityNotes)
	return row
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Day columns are left empty for trips that have no activities.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	var dayNumber, position string
	if r.ActivityID != "" {
		dayNumber = strconv.Itoa(r.DayNumber)
		position = strconv.Itoa(r.Position)
	}
	return []string{
		r.TripID,
		r.TripName,
		r.Destination,
		r.TripStartDate,
		r.TripEndDate,
		r.Status,
		dayNumber,
		r.DayDate,
		position,
		r.ActivityID,
		r.ActivityName,
		r.ActivityTime,
		r.ActivityLocation,
		r.ActivityType,
		r.ActivityNotes,
	}
}

// parseDate parses a "2006-01-02" string produced by the export service.
// A malformed value yields the zero date rather than failing the export.
func parseDate(s string) openapi_types.Date {
	t, _ := time.Parse(time.DateOnly, s)
	return openapi_types.Date{Time: t}
}
