package ticketing

import (
	"net/url"
	"strconv"

	"happnings/internal/domain/service"
)

// buildSearchParams maps a normalized query onto the discovery API's
// parameter names. Zero-valued optional fields are omitted entirely so the
// upstream does not treat them as empty filters.
func buildSearchParams(query *service.EventQuery) url.Values {
	params := url.Values{}

	if query.Latitude != 0 || query.Longitude != 0 {
		latlong := strconv.FormatFloat(query.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(query.Longitude, 'f', -1, 64)
		params.Set("latlong", latlong)
		params.Set("radius", strconv.Itoa(query.RadiusMiles))
		params.Set("unit", "miles")
	}

	if query.StartDateTime != "" {
		params.Set("startDateTime", query.StartDateTime)
	}
	if query.EndDateTime != "" {
		params.Set("endDateTime", query.EndDateTime)
	}
	if query.ClassificationID != "" {
		params.Set("classificationId", query.ClassificationID)
	}
	if query.Keyword != "" {
		params.Set("keyword", query.Keyword)
	}
	if query.PageSize > 0 {
		params.Set("size", strconv.Itoa(query.PageSize))
	}
	params.Set("sort", "date,asc")

	return params
}
