package request

import "reserva-api/internal/usecase/commands"

type CreateReservationRequest struct {
	Email     string `json:"email" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	PartySize *int32 `json:"partySize,omitempty" binding:"omitempty,min=1"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		Email:     r.Email,
		Date:      r.Date,
		Time:      r.Time,
		PartySize: r.PartySize,
	}
}
