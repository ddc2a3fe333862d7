package constants

// Client-facing error messages. Internal detail is logged, never returned.
const (
	MsgInternalError        = "Internal server error"
	MsgInvalidRequestBody   = "Invalid request body"
	MsgFlightNotFound       = "Flight not found"
	MsgAirportNotFound      = "Airport not found"
	MsgSearchUnavailable    = "Airport search is temporarily unavailable"
	MsgRateLimited          = "Too many requests"
	MsgSeedFailed           = "Unable to seed airports"
	MsgRenormalizeFailed    = "Unable to renormalize airports"
	MsgCreateFlightFailed   = "Failed to create flight"
	MsgUpdateFlightFailed   = "Failed to update flight"
	MsgDeleteFlightFailed   = "Failed to delete flight"
	MsgListFlightsFailed    = "Failed to fetch flights"
	MsgListAirportsFailed   = "Failed to fetch airports"
	MsgListCountriesFailed  = "Failed to fetch visited countries"
	MsgAuditFailed          = "Unable to audit airports"
	MsgCorrectAirportFailed = "Unable to update airport"
)

const (
	StatusSeeded          = "Airports seeded"
	StatusRenormalized    = "Airports renormalized"
	StatusAirportSaved    = "Airport updated"
	StatusIssuesListed    = "Airport issues listed"
	StatusAirportsListed  = "Airports fetched"
	StatusCountriesListed = "Visited countries fetched"
)
