package worldclim

// BioPointAPIResponse is the sampler's response for one coordinate.
// Values is keyed by variable code (BIO1..BIO19); a null value means the
// raster has no data at that coordinate (e.g. open water).
type BioPointAPIResponse struct {
	Longitude float64             `json:"longitude"`
	Latitude  float64             `json:"latitude"`
	Values    map[string]*float64 `json:"values"`
}
