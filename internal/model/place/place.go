// Package place defines the offered place entity and its request payloads.
package place

// TableName is the relational table backing Place.
const TableName = "offered_places"

// Place is a listing offered for a period of time. Only ID and Title are
// always present; nil optional fields are stored and rendered as null.
type Place struct {
	ID            int64    `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	ImageURL      *string  `json:"image_url" db:"image_url"`
	Descripcion   *string  `json:"descripcion" db:"descripcion"`
	AvailableFrom *string  `json:"available_from" db:"available_from"`
	AvailableTo   *string  `json:"available_to" db:"available_to"`
	UserNum       *string  `json:"user_num" db:"user_num"`
	Price         *float64 `json:"price" db:"price"`
}

// Fields is the client-writable part of a Place.
type Fields struct {
	Title         string   `json:"title" validate:"required"`
	ImageURL      *string  `json:"image_url"`
	Descripcion   *string  `json:"descripcion"`
	AvailableFrom *string  `json:"available_from"`
	AvailableTo   *string  `json:"available_to"`
	UserNum       *string  `json:"user_num"`
	Price         *float64 `json:"price"`
}

// ApplyTo overwrites every mutable field of p with f. p.ID is untouched.
func (f Fields) ApplyTo(p *Place) {
	p.Title = f.Title
	p.ImageURL = f.ImageURL
	p.Descripcion = f.Descripcion
	p.AvailableTo = f.AvailableTo
	p.AvailableFrom = f.AvailableFrom
	p.UserNum = f.UserNum
	p.Price = f.Price
}

// New builds an unsaved Place (ID zero) from f.
func (f Fields) New() *Place {
	p := &Place{}
	f.ApplyTo(p)
	return p
}

// Clone returns a deep copy of p so callers never share optional values.
func (p Place) Clone() Place {
	out := p
	out.ImageURL = cloneString(p.ImageURL)
	out.Descripcion = cloneString(p.Descripcion)
	out.AvailableFrom = cloneString(p.AvailableFrom)
	out.AvailableTo = cloneString(p.AvailableTo)
	out.UserNum = cloneString(p.UserNum)
	if p.Price != nil {
		v := *p.Price
		out.Price = &v
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
