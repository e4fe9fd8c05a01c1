package response

type RegisterCustomerResponse struct {
	ID int64 `json:"id"`
}
