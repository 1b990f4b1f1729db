package reports

import "errors"

// ErrMissingFields is returned when a report lacks usuarioId or coordinates.
var ErrMissingFields = errors.New("usuarioId and coordinates are required")

// ErrMissingUsuarioID is returned when a listing is requested without a usuarioId.
var ErrMissingUsuarioID = errors.New("usuarioId is required")

// ErrCreateReport is returned when report persistence fails.
var ErrCreateReport = errors.New("failed to create report")

// ErrListReports is returned when report listing fails.
var ErrListReports = errors.New("failed to list reports")
