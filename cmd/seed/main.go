// Seeds a deterministic sample dataset so the report endpoints have
// something to chew on in a fresh environment.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"flightops-service/internal/infrastructure/config"
	"flightops-service/internal/infrastructure/persistence"
	"flightops-service/internal/interface/repository"
	"flightops-service/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	log := logger.NewLogger()
	log.Info("Seeding sample data")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx := context.Background()
	db, err := persistence.NewPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	if err := seed(db); err != nil {
		log.Fatal("Failed to seed data", "error", err)
	}

	log.Info("Sample data seeded")
}

// seed tops the tables up to a usable minimum. A fixed random seed keeps
// repeated runs from drifting.
func seed(db *gorm.DB) error {
	rnd := rand.New(rand.NewSource(123))
	now := time.Now().UTC().Truncate(24 * time.Hour)

	airports := []repository.Airports{
		{IATA: "MCT", Name: "Muscat Intl", City: "Muscat", Country: "Oman"},
		{IATA: "DXB", Name: "Dubai Intl", City: "Dubai", Country: "UAE"},
		{IATA: "DOH", Name: "Hamad Intl", City: "Doha", Country: "Qatar"},
		{IATA: "BAH", Name: "Bahrain Intl", City: "Manama", Country: "Bahrain"},
		{IATA: "JED", Name: "Jeddah", City: "Jeddah", Country: "Saudi Arabia"},
		{IATA: "RUH", Name: "Riyadh", City: "Riyadh", Country: "Saudi Arabia"},
		{IATA: "IST", Name: "Istanbul", City: "Istanbul", Country: "Turkiye"},
		{IATA: "LHR", Name: "Heathrow", City: "London", Country: "UK"},
		{IATA: "KWI", Name: "Kuwait", City: "Kuwait City", Country: "Kuwait"},
		{IATA: "AMM", Name: "Queen Alia", City: "Amman", Country: "Jordan"},
	}
	var airportCount int64
	db.Model(&repository.Airports{}).Count(&airportCount)
	if airportCount < int64(len(airports)) {
		if err := db.Create(&airports).Error; err != nil {
			return err
		}
	} else {
		if err := db.Find(&airports).Error; err != nil {
			return err
		}
	}

	var aircraft []repository.Aircrafts
	for i := 1; i <= 10; i++ {
		model := "B737-800"
		if i%2 == 0 {
			model = "A320"
		}
		aircraft = append(aircraft, repository.Aircrafts{
			TailNumber: fmt.Sprintf("A%03d", i),
			Model:      model,
			Capacity:   150 + rnd.Intn(51),
		})
	}
	var aircraftCount int64
	db.Model(&repository.Aircrafts{}).Count(&aircraftCount)
	if aircraftCount < int64(len(aircraft)) {
		if err := db.Create(&aircraft).Error; err != nil {
			return err
		}
	} else {
		if err := db.Find(&aircraft).Error; err != nil {
			return err
		}
	}

	var crew []repository.CrewMembers
	roles := []string{"Captain", "FO", "Purser", "FA"}
	for i := 1; i <= 20; i++ {
		role := roles[i%len(roles)]
		license := ""
		if role == "Captain" || role == "FO" {
			license = fmt.Sprintf("LIC%04d", i)
		}
		crew = append(crew, repository.CrewMembers{
			FullName:  fmt.Sprintf("Crew %d", i),
			Role:      role,
			LicenseNo: license,
		})
	}
	var crewCount int64
	db.Model(&repository.CrewMembers{}).Count(&crewCount)
	if crewCount < int64(len(crew)) {
		if err := db.Create(&crew).Error; err != nil {
			return err
		}
	} else {
		if err := db.Find(&crew).Error; err != nil {
			return err
		}
	}

	var routes []repository.Routes
	seen := make(map[[2]uint]bool)
	for len(routes) < 20 {
		origin := airports[rnd.Intn(len(airports))].ID
		destination := airports[rnd.Intn(len(airports))].ID
		if origin == destination || seen[[2]uint{origin, destination}] {
			continue
		}
		seen[[2]uint{origin, destination}] = true
		routes = append(routes, repository.Routes{
			OriginAirportID:      origin,
			DestinationAirportID: destination,
			DistanceKm:           300 + rnd.Intn(2900),
		})
	}
	var routeCount int64
	db.Model(&repository.Routes{}).Count(&routeCount)
	if routeCount < int64(len(routes)) {
		if err := db.Create(&routes).Error; err != nil {
			return err
		}
	} else {
		if err := db.Find(&routes).Error; err != nil {
			return err
		}
	}

	var flights []repository.Flights
	for i := 1; i <= 30; i++ {
		route := routes[rnd.Intn(len(routes))]
		frame := aircraft[rnd.Intn(len(aircraft))]
		departure := now.AddDate(0, 0, rnd.Intn(40)-30).Add(time.Duration(rnd.Intn(24)) * time.Hour)
		duration := time.Duration(60+route.DistanceKm/10) * time.Minute
		flights = append(flights, repository.Flights{
			FlightNumber: fmt.Sprintf("FO%03d", 100+i),
			DepartureUTC: departure,
			ArrivalUTC:   departure.Add(duration),
			Status:       "Scheduled",
			RouteID:      route.ID,
			AircraftID:   frame.ID,
		})
	}
	var flightCount int64
	db.Model(&repository.Flights{}).Count(&flightCount)
	if flightCount < int64(len(flights)) {
		if err := db.Create(&flights).Error; err != nil {
			return err
		}
	} else {
		if err := db.Find(&flights).Error; err != nil {
			return err
		}
	}

	var assignmentCount int64
	db.Model(&repository.FlightCrews{}).Count(&assignmentCount)
	if assignmentCount == 0 {
		var assignments []repository.FlightCrews
		for _, f := range flights {
			picked := map[uint]bool{}
			for len(picked) < 3 {
				member := crew[rnd.Intn(len(crew))]
				if picked[member.ID] {
					continue
				}
				picked[member.ID] = true
				assignments = append(assignments, repository.FlightCrews{
					FlightID:     f.ID,
					CrewID:       member.ID,
					RoleOnFlight: member.Role,
				})
			}
		}
		if err := db.Create(&assignments).Error; err != nil {
			return err
		}
	}

	var passengers []repository.Passengers
	for i := 1; i <= 40; i++ {
		passengers = append(passengers, repository.Passengers{
			FullName:    fmt.Sprintf("Passenger %02d", i),
			PassportNo:  fmt.Sprintf("P%06d", 100000+i),
			Nationality: "OM",
			DateOfBirth: now.AddDate(-20-rnd.Intn(40), 0, 0),
		})
	}
	var passengerCount int64
	db.Model(&repository.Passengers{}).Count(&passengerCount)
	if passengerCount < int64(len(passengers)) {
		if err := db.Create(&passengers).Error; err != nil {
			return err
		}
	} else {
		if err := db.Find(&passengers).Error; err != nil {
			return err
		}
	}

	var bookingCount int64
	db.Model(&repository.Bookings{}).Count(&bookingCount)
	if bookingCount == 0 {
		var bookings []repository.Bookings
		for i, p := range passengers {
			status := "Confirmed"
			if rnd.Intn(10) == 0 {
				status = "Canceled"
			}
			bookings = append(bookings, repository.Bookings{
				BookingRef:  fmt.Sprintf("BR%05d", 10000+i),
				BookingDate: now.AddDate(0, 0, -rnd.Intn(60)),
				Status:      status,
				Canceled:    status == "Canceled",
				PassengerID: p.ID,
			})
		}
		if err := db.Create(&bookings).Error; err != nil {
			return err
		}

		var tickets []repository.Tickets
		for _, b := range bookings {
			legs := 1 + rnd.Intn(3)
			for leg := 0; leg < legs; leg++ {
				flight := flights[rnd.Intn(len(flights))]
				tickets = append(tickets, repository.Tickets{
					FlightID:   flight.ID,
					BookingID:  b.ID,
					SeatNumber: fmt.Sprintf("%d%c", 1+rnd.Intn(30), 'A'+rune(rnd.Intn(6))),
					Fare:       float64(40 + rnd.Intn(400)),
					CheckedIn:  rnd.Intn(2) == 0,
				})
			}
		}
		if err := db.Create(&tickets).Error; err != nil {
			return err
		}

		var bags []repository.BaggageItems
		for i, t := range tickets {
			for n := 0; n < rnd.Intn(3); n++ {
				bags = append(bags, repository.BaggageItems{
					TicketID:  t.ID,
					WeightKg:  5 + float64(rnd.Intn(250))/10,
					TagNumber: fmt.Sprintf("TAG%05d-%d", i, n),
				})
			}
		}
		if len(bags) > 0 {
			if err := db.Create(&bags).Error; err != nil {
				return err
			}
		}
	}

	var maintenanceCount int64
	db.Model(&repository.MaintenanceRecords{}).Count(&maintenanceCount)
	if maintenanceCount == 0 {
		var records []repository.MaintenanceRecords
		for i, a := range aircraft {
			// Leave every fourth airframe never maintained.
			if i%4 == 3 {
				continue
			}
			records = append(records, repository.MaintenanceRecords{
				AircraftID: a.ID,
				Date:       now.AddDate(0, 0, -rnd.Intn(150)),
				Type:       "A-check",
				Notes:      "routine",
			})
		}
		if err := db.Create(&records).Error; err != nil {
			return err
		}
	}

	return nil
}
