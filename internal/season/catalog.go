package season

import "time"

// Destination is one entry of the static seasonal catalog.
type Destination struct {
	Name       string
	Country    string
	Lat        float64
	Lon        float64
	PeakMonths []time.Month
}

// Catalog lists the twelve destinations the seasonal screen rotates through.
// Order matters: the resolver returns the first four peak and first four
// shoulder entries in declaration order.
var Catalog = []Destination{
	{Name: "Goa", Country: "India", Lat: 15.2993, Lon: 74.1240,
		PeakMonths: []time.Month{time.November, time.December, time.January, time.February}},
	{Name: "Dubai", Country: "UAE", Lat: 25.2048, Lon: 55.2708,
		PeakMonths: []time.Month{time.November, time.December, time.January, time.February, time.March}},
	{Name: "Bali", Country: "Indonesia", Lat: -8.3405, Lon: 115.0920,
		PeakMonths: []time.Month{time.May, time.June, time.July, time.August}},
	{Name: "Maldives", Country: "Maldives", Lat: 3.2028, Lon: 73.2207,
		PeakMonths: []time.Month{time.December, time.January, time.February, time.March}},
	{Name: "Singapore", Country: "Singapore", Lat: 1.3521, Lon: 103.8198,
		PeakMonths: []time.Month{time.June, time.July, time.December}},
	{Name: "Phuket", Country: "Thailand", Lat: 7.8804, Lon: 98.3923,
		PeakMonths: []time.Month{time.November, time.December, time.January, time.February}},
	{Name: "Manali", Country: "India", Lat: 32.2396, Lon: 77.1887,
		PeakMonths: []time.Month{time.May, time.June, time.December, time.January}},
	{Name: "Srinagar", Country: "India", Lat: 34.0837, Lon: 74.7973,
		PeakMonths: []time.Month{time.April, time.May, time.June, time.July}},
	{Name: "Munnar", Country: "India", Lat: 10.0889, Lon: 77.0595,
		PeakMonths: []time.Month{time.September, time.October, time.November}},
	{Name: "Jaipur", Country: "India", Lat: 26.9124, Lon: 75.7873,
		PeakMonths: []time.Month{time.October, time.November, time.December, time.January, time.February}},
	{Name: "Port Blair", Country: "India", Lat: 11.6234, Lon: 92.7265,
		PeakMonths: []time.Month{time.November, time.December, time.January, time.February, time.March}},
	{Name: "Darjeeling", Country: "India", Lat: 27.0360, Lon: 88.2627,
		PeakMonths: []time.Month{time.March, time.April, time.May, time.October, time.November}},
}

// isPeakMonth reports whether m is one of d's peak months.
func (d Destination) isPeakMonth(m time.Month) bool {
	for _, pm := range d.PeakMonths {
		if pm == m {
			return true
		}
	}
	return false
}
