package customer

import "errors"

// UpdateCustomerDTO carries the editable customer fields. Zero-value fields
// are left untouched; Status is validated against the closed set.
type UpdateCustomerDTO struct {
	Name    string  `json:"name,omitempty"`
	Email   string  `json:"email,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Status  string  `json:"status,omitempty"`
}

func (d UpdateCustomerDTO) Validate() error {
	if d.Status != "" && !IsValidStatus(d.Status) {
		return errors.New("status must be one of active, inactive, potential")
	}
	if d.Name == "" && d.Email == "" && d.Phone == "" && d.Company == nil &&
		d.Address == nil && d.City == nil && d.Status == "" {
		return errors.New("no fields to update")
	}
	return nil
}

func (d UpdateCustomerDTO) applyTo(c *Customer) {
	if d.Name != "" {
		c.Name = d.Name
	}
	if d.Email != "" {
		c.Email = d.Email
	}
	if d.Phone != "" {
		c.Phone = d.Phone
	}
	if d.Company != nil {
		c.Company = d.Company
	}
	if d.Address != nil {
		c.Address = d.Address
	}
	if d.City != nil {
		c.City = d.City
	}
	if d.Status != "" {
		c.Status = d.Status
	}
}
