package http

// CreateRoomRequest is the optional payload of POST /rooms. Omitted fields
// fall back to the server configuration.
type CreateRoomRequest struct {
	Rows int    `json:"rows" binding:"omitempty,min=3,max=256"`
	Cols int    `json:"cols" binding:"omitempty,min=3,max=256"`
	Blue string `json:"blue" binding:"max=32"`
	Red  string `json:"red" binding:"max=32"`
}

// PlaceRequest is the payload of POST /rooms/:code/points. The point goes
// to whoever's turn it is.
type PlaceRequest struct {
	I *int `json:"i" binding:"required"`
	J *int `json:"j" binding:"required"`
}
