package response

import (
	"time"

	"reserva-api/internal/usecase/commands"
	"reserva-api/internal/usecase/queries"
)

type CreateReservationResponse struct {
	ID      int64  `json:"id"`
	TableID *int64 `json:"tableId,omitempty"`
}

func FromCreateResult(result *commands.CreateReservationResult) *CreateReservationResponse {
	return &CreateReservationResponse{
		ID:      result.ID,
		TableID: result.TableID,
	}
}

type ReservationResponse struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PartySize     *int32    `json:"partySize,omitempty"`
	TableID       *int64    `json:"tableId,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            view.ID,
		CustomerID:    view.CustomerID,
		CustomerName:  view.CustomerName,
		CustomerEmail: view.CustomerEmail,
		CustomerPhone: view.CustomerPhone,
		Date:          view.Date,
		Time:          view.Time,
		PartySize:     view.PartySize,
		TableID:       view.TableID,
		Status:        view.Status,
		CreatedAt:     view.CreatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromReservationView(v))
	}
	return out
}

type AvailabilityResponse struct {
	Policy    string  `json:"policy"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Available bool    `json:"available"`
	TableIDs  []int64 `json:"tableIds,omitempty"`
	Remaining *int64  `json:"remaining,omitempty"`
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Policy:    view.Policy,
		Date:      view.Date,
		Time:      view.Time,
		Available: view.Available,
		TableIDs:  view.TableIDs,
		Remaining: view.Remaining,
	}
}
