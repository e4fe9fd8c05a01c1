package customer

import "time"

// Customer entity. Immutable after registration; customers are never deleted.
type Customer struct {
	id        int64
	name      Name
	email     Email
	phone     Phone
	createdAt time.Time
}

func NewCustomer(name Name, email Email, phone Phone) *Customer {
	return &Customer{
		name:  name,
		email: email,
		phone: phone,
	}
}

func ReconstructCustomer(id int64, name Name, email Email, phone Phone, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() int64            { return c.id }
func (c *Customer) Name() Name           { return c.name }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) Phone() Phone         { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
