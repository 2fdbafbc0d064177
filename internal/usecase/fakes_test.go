package usecase

import (
	"context"
	"time"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"
	"flightops-service/pkg/logger"
)

// fakeData is the shared in-memory dataset the fake repositories read.
type fakeData struct {
	flights     []entity.Flight
	tickets     []entity.Ticket
	bookings    []entity.Booking
	passengers  []entity.Passenger
	members     []entity.CrewMember
	assignments []entity.CrewAssignment
	maintenance []entity.MaintenanceRecord
	baggage     []entity.Baggage
	routes      []entity.Route
	aircraft    []entity.Aircraft
	airports    []entity.Airport
}

type fakeFlightRepo struct{ data *fakeData }

func (r fakeFlightRepo) ListInWindow(_ context.Context, fromUTC, toUTC *time.Time) ([]entity.Flight, error) {
	flights := []entity.Flight{}
	for _, f := range r.data.flights {
		if fromUTC != nil && f.DepartureUTC.Before(*fromUTC) {
			continue
		}
		if toUTC != nil && f.DepartureUTC.After(*toUTC) {
			continue
		}
		flights = append(flights, f)
	}
	return flights, nil
}

func (r fakeFlightRepo) GetByID(_ context.Context, id uint) (*entity.Flight, error) {
	for _, f := range r.data.flights {
		if f.ID == id {
			flight := f
			return &flight, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeTicketRepo struct{ data *fakeData }

func (r fakeTicketRepo) List(_ context.Context) ([]entity.Ticket, error) {
	return r.data.tickets, nil
}

func (r fakeTicketRepo) ListByFlight(_ context.Context, flightID uint) ([]entity.Ticket, error) {
	tickets := []entity.Ticket{}
	for _, t := range r.data.tickets {
		if t.FlightID == flightID {
			tickets = append(tickets, t)
		}
	}
	return tickets, nil
}

type fakeBookingRepo struct{ data *fakeData }

func (r fakeBookingRepo) List(_ context.Context) ([]entity.Booking, error) {
	return r.data.bookings, nil
}

type fakePassengerRepo struct{ data *fakeData }

func (r fakePassengerRepo) List(_ context.Context) ([]entity.Passenger, error) {
	return r.data.passengers, nil
}

type fakeCrewRepo struct{ data *fakeData }

func (r fakeCrewRepo) ListMembers(_ context.Context) ([]entity.CrewMember, error) {
	return r.data.members, nil
}

func (r fakeCrewRepo) ListAssignments(_ context.Context) ([]entity.CrewAssignment, error) {
	return r.data.assignments, nil
}

type fakeMaintenanceRepo struct{ data *fakeData }

func (r fakeMaintenanceRepo) List(_ context.Context) ([]entity.MaintenanceRecord, error) {
	return r.data.maintenance, nil
}

func (r fakeMaintenanceRepo) ListByAircraft(_ context.Context, aircraftID uint) ([]entity.MaintenanceRecord, error) {
	records := []entity.MaintenanceRecord{}
	for _, m := range r.data.maintenance {
		if m.AircraftID == aircraftID {
			records = append(records, m)
		}
	}
	return records, nil
}

type fakeBaggageRepo struct{ data *fakeData }

func (r fakeBaggageRepo) List(_ context.Context) ([]entity.Baggage, error) {
	return r.data.baggage, nil
}

func (r fakeBaggageRepo) ListByTicket(_ context.Context, ticketID uint) ([]entity.Baggage, error) {
	bags := []entity.Baggage{}
	for _, b := range r.data.baggage {
		if b.TicketID == ticketID {
			bags = append(bags, b)
		}
	}
	return bags, nil
}

type fakeRouteRepo struct{ data *fakeData }

func (r fakeRouteRepo) List(_ context.Context) ([]entity.Route, error) {
	return r.data.routes, nil
}

type fakeAircraftRepo struct{ data *fakeData }

func (r fakeAircraftRepo) List(_ context.Context) ([]entity.Aircraft, error) {
	return r.data.aircraft, nil
}

func (r fakeAircraftRepo) GetByID(_ context.Context, id uint) (*entity.Aircraft, error) {
	for _, a := range r.data.aircraft {
		if a.ID == id {
			aircraft := a
			return &aircraft, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeAirportRepo struct{ data *fakeData }

func (r fakeAirportRepo) List(_ context.Context) ([]entity.Airport, error) {
	return r.data.airports, nil
}

// newTestService wires a ReportService over the fake dataset with a
// frozen clock.
func newTestService(data *fakeData, mode CancellationMode, now time.Time) *ReportService {
	s := NewReportService(
		fakeFlightRepo{data},
		fakeTicketRepo{data},
		fakeBookingRepo{data},
		fakePassengerRepo{data},
		fakeCrewRepo{data},
		fakeMaintenanceRepo{data},
		fakeBaggageRepo{data},
		fakeRouteRepo{data},
		fakeAircraftRepo{data},
		fakeAirportRepo{data},
		mode,
		logger.NewNop(),
	)
	s.now = func() time.Time { return now }
	return s
}
