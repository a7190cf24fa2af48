package domain

// Customer holds the identity data of an account holder.
type Customer struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
}

// NewCustomer returns a customer with the given name and national ID.
func NewCustomer(name, nationalID string) Customer {
	return Customer{
		Name:       name,
		NationalID: nationalID,
	}
}
