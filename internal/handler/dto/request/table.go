package request

import "reserva-api/internal/usecase/commands"

type ReconfigureTableRequest struct {
	TableID  *int64 `json:"tableId,omitempty"`
	Capacity int32  `json:"capacity" binding:"required,min=1"`
}

func (r ReconfigureTableRequest) ToInput() commands.ReconfigureTableInput {
	return commands.ReconfigureTableInput{
		TableID:  r.TableID,
		Capacity: r.Capacity,
	}
}
