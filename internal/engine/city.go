package engine

// City selects the transport and housing profile.
type City string

// Recognized cities. Anything else uses the CityOther profile.
const (
	CityLagos        City = "Lagos"
	CityIbadan       City = "Ibadan"
	CityAbeokuta     City = "Abeokuta"
	CityPortHarcourt City = "Port Harcourt"
	CityOther        City = "Other"
)

// CityProfile holds the fixed monthly costs for a city.
type CityProfile struct {
	Transport float64 `json:"transport" yaml:"transport"` // charged only when not walking
	RentShare float64 `json:"rent_share" yaml:"rent_share"`
}

var cityProfiles = map[City]CityProfile{
	CityLagos:        {Transport: 15_000, RentShare: 70_000},
	CityIbadan:       {Transport: 8_000, RentShare: 40_000},
	CityAbeokuta:     {Transport: 8_000, RentShare: 40_000},
	CityPortHarcourt: {Transport: 12_000, RentShare: 55_000},
	CityOther:        {Transport: 10_000, RentShare: 50_000},
}

// Cities returns the selectable cities in display order.
func Cities() []City {
	return []City{CityLagos, CityIbadan, CityAbeokuta, CityPortHarcourt, CityOther}
}

// Known reports whether c has its own profile. Matching is case-sensitive.
func (c City) Known() bool {
	_, ok := cityProfiles[c]
	return ok && c != CityOther
}

// ProfileFor returns the profile for c, or the CityOther profile when c is
// not recognized.
func ProfileFor(c City) CityProfile {
	if p, ok := cityProfiles[c]; ok {
		return p
	}
	return cityProfiles[CityOther]
}
