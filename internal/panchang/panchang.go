// Package panchang derives the daily almanac attributes shown on the
// panchangam page. The derivation is a deterministic placeholder, not
// an ephemeris: each classification is picked from a fixed table by the
// date's day-of-year modulo the table length, and the timing strings
// are constants. The same date always yields the same output, and the
// time of day never influences it.
package panchang

import "time"

// Nakshatras is the 12-entry lunar mansion table, in fixed order.
var Nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
}

// Karnas is the 10-entry half-tithi table, in fixed order.
var Karnas = []string{
	"Bava", "Balava", "Kaulava", "Taitila", "Garija",
	"Vanija", "Vishti", "Shakuni", "Chatushpada", "Naga",
}

// Yogas is the 10-entry yoga table, in fixed order.
var Yogas = []string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
}

// Tithis is the 10-entry lunar day table, in fixed order.
var Tithis = []string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
}

// Placeholder timing strings. These are not derived from the date; the
// site has always displayed these fixed values and callers depend on
// them staying constant until real ephemeris data is sourced.
const (
	sunrise  = "06:15 AM"
	sunset   = "06:45 PM"
	moonrise = "08:30 PM"
	moonset  = "07:20 AM"
)

// Panchang is the almanac response for a single date.
type Panchang struct {
	Nakshatra string `json:"nakshatra"`
	Karna     string `json:"karna"`
	Yoga      string `json:"yoga"`
	Tithi     string `json:"tithi"`
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	Moonrise  string `json:"moonrise"`
	Moonset   string `json:"moonset"`
}

// Compute derives the almanac attributes for the given date. Only the
// date component matters: January 1st counts as day-of-year 1, and each
// classification is table[dayOfYear mod len(table)].
func Compute(date time.Time) Panchang {
	day := date.YearDay()
	return Panchang{
		Nakshatra: Nakshatras[day%len(Nakshatras)],
		Karna:     Karnas[day%len(Karnas)],
		Yoga:      Yogas[day%len(Yogas)],
		Tithi:     Tithis[day%len(Tithis)],
		Sunrise:   sunrise,
		Sunset:    sunset,
		Moonrise:  moonrise,
		Moonset:   moonset,
	}
}
