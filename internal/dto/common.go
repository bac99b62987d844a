package dto

// ListParams carries pagination for list endpoints.
type ListParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// Normalize clamps pagination values to sane bounds.
func (p *ListParams) Normalize() {
	if p.Limit <= 0 || p.Limit > 200 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
