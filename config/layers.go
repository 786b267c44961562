package config

// Physics layers used to classify terrain surfaces
const (
	LayerGround = "ground"
	LayerHazard = "hazard"
)
