package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAirportSearch CachePrefix = "AIRPORT_SEARCH_"
)

// Role of an endpoint within a flight. Placeholder codes carry it as a suffix.
type EndpointRole string

const (
	RoleDeparture EndpointRole = "DEP"
	RoleArrival   EndpointRole = "ARR"
)
