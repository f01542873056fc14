package models

// GeoJSONPolygon carries a zone boundary as plain GeoJSON coordinates.
// Rendering and editing happen in the portal UI; this side only stores and
// forwards the geometry.
type GeoJSONPolygon struct {
	Type        string         `json:"type" validate:"eq=Polygon"`
	Coordinates [][][2]float64 `json:"coordinates" validate:"required,min=1"`
}

// Zone is a named delivery polygon with a price and an optional operating
// window. hasTimeLimit gates startTime/endTime ("HH:MM" local times).
type Zone struct {
	ID           string         `json:"id,omitempty"`
	Name         string         `json:"name"  validate:"required"`
	Price        float64        `json:"price" validate:"gte=0"`
	HasTimeLimit bool           `json:"hasTimeLimit"`
	StartTime    *string        `json:"startTime"`
	EndTime      *string        `json:"endTime"`
	CompanyID    string         `json:"companyId" validate:"required"`
	IsActive     bool           `json:"isActive"`
	Geometry     GeoJSONPolygon `json:"geometry" validate:"required"`
}
