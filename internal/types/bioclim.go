package types

// BioVariable describes one of the 19 WorldClim bioclimatic variables.
// Scale is the factor the raw raster value is stored at (e.g. temperatures
// are stored as value*10); a scale of 1 means the value is used as-is.
type BioVariable struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Scale       float64 `json:"scale"`
}

// DatasetResolutionMeters is the ground resolution of the WORLDCLIM/V1/BIO
// raster (30 arc-seconds).
const DatasetResolutionMeters = 927.67

// BioVariables is the canonical ordered set of the 19 WorldClim bioclimatic
// variables. Result table columns follow this order.
var BioVariables = []BioVariable{
	{Code: "BIO1", Description: "Annual mean temperature", Unit: "°C", Scale: 0.1},
	{Code: "BIO2", Description: "Mean diurnal temperature range", Unit: "°C", Scale: 0.1},
	{Code: "BIO3", Description: "Isothermality", Unit: "%", Scale: 1},
	{Code: "BIO4", Description: "Temperature seasonality", Unit: "°C", Scale: 0.01},
	{Code: "BIO5", Description: "Maximum temperature of warmest month", Unit: "°C", Scale: 0.1},
	{Code: "BIO6", Description: "Minimum temperature of coldest month", Unit: "°C", Scale: 0.1},
	{Code: "BIO7", Description: "Annual temperature range", Unit: "°C", Scale: 0.1},
	{Code: "BIO8", Description: "Mean temperature of wettest quarter", Unit: "°C", Scale: 0.1},
	{Code: "BIO9", Description: "Mean temperature of driest quarter", Unit: "°C", Scale: 0.1},
	{Code: "BIO10", Description: "Mean temperature of warmest quarter", Unit: "°C", Scale: 0.1},
	{Code: "BIO11", Description: "Mean temperature of coldest quarter", Unit: "°C", Scale: 0.1},
	{Code: "BIO12", Description: "Annual precipitation", Unit: "mm", Scale: 1},
	{Code: "BIO13", Description: "Precipitation of wettest month", Unit: "mm", Scale: 1},
	{Code: "BIO14", Description: "Precipitation of driest month", Unit: "mm", Scale: 1},
	{Code: "BIO15", Description: "Precipitation seasonality", Unit: "%", Scale: 1},
	{Code: "BIO16", Description: "Precipitation of wettest quarter", Unit: "mm", Scale: 1},
	{Code: "BIO17", Description: "Precipitation of driest quarter", Unit: "mm", Scale: 1},
	{Code: "BIO18", Description: "Precipitation of warmest quarter", Unit: "mm", Scale: 1},
	{Code: "BIO19", Description: "Precipitation of coldest quarter", Unit: "mm", Scale: 1},
}

// BioCodes returns the 19 variable codes in canonical column order.
func BioCodes() []string {
	codes := make([]string, len(BioVariables))
	for i, v := range BioVariables {
		codes[i] = v.Code
	}
	return codes
}
