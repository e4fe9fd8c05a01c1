package request

import "reserva-api/internal/usecase/commands"

type RegisterCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (r RegisterCustomerRequest) ToInput() commands.RegisterCustomerInput {
	return commands.RegisterCustomerInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}
