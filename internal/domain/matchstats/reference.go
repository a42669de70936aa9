package matchstats

import "slices"

// TeamProfile is a pool entry; a Team gets a fresh ID each time one is picked.
type TeamProfile struct {
	Name      string
	ShortName string
	Country   string
}

var teamPool = []TeamProfile{
	{Name: "Manchester United", ShortName: "MUN", Country: "England"},
	{Name: "Real Madrid", ShortName: "RMA", Country: "Spain"},
	{Name: "Bayern Munich", ShortName: "BAY", Country: "Germany"},
	{Name: "Barcelona", ShortName: "BAR", Country: "Spain"},
	{Name: "Liverpool", ShortName: "LIV", Country: "England"},
	{Name: "Paris Saint-Germain", ShortName: "PSG", Country: "France"},
	{Name: "Juventus", ShortName: "JUV", Country: "Italy"},
	{Name: "Arsenal", ShortName: "ARS", Country: "England"},
	{Name: "Chelsea", ShortName: "CHE", Country: "England"},
	{Name: "Manchester City", ShortName: "MCI", Country: "England"},
	{Name: "AC Milan", ShortName: "MIL", Country: "Italy"},
	{Name: "Inter Milan", ShortName: "INT", Country: "Italy"},
	{Name: "Borussia Dortmund", ShortName: "BVB", Country: "Germany"},
	{Name: "Atletico Madrid", ShortName: "ATM", Country: "Spain"},
	{Name: "Tottenham", ShortName: "TOT", Country: "England"},
}

var venuePool = []Venue{
	{Name: "Old Trafford", City: "Manchester", Country: "England", Capacity: 74879},
	{Name: "Santiago Bernabéu", City: "Madrid", Country: "Spain", Capacity: 81044},
	{Name: "Allianz Arena", City: "Munich", Country: "Germany", Capacity: 75000},
	{Name: "Camp Nou", City: "Barcelona", Country: "Spain", Capacity: 99354},
	{Name: "Anfield", City: "Liverpool", Country: "England", Capacity: 53394},
	{Name: "Parc des Princes", City: "Paris", Country: "France", Capacity: 47929},
	{Name: "Allianz Stadium", City: "Turin", Country: "Italy", Capacity: 41507},
	{Name: "Emirates Stadium", City: "London", Country: "England", Capacity: 60260},
	{Name: "Stamford Bridge", City: "London", Country: "England", Capacity: 40834},
	{Name: "Etihad Stadium", City: "Manchester", Country: "England", Capacity: 55017},
}

var refereePool = []string{
	"Michael Oliver", "Anthony Taylor", "Paul Tierney", "Chris Kavanagh",
	"Simon Hooper", "Andre Marriner", "Martin Atkinson", "Mike Dean",
	"Stuart Attwell", "David Coote", "Peter Bankes", "Jarred Gillett",
}

var weatherPool = []string{
	"Clear", "Partly cloudy", "Cloudy", "Light rain", "Heavy rain",
	"Drizzle", "Fog", "Sunny", "Overcast", "Windy",
}

func Teams() []TeamProfile {
	return slices.Clone(teamPool)
}

func Venues() []Venue {
	return slices.Clone(venuePool)
}

func Referees() []string {
	return slices.Clone(refereePool)
}

func WeatherConditions() []string {
	return slices.Clone(weatherPool)
}
