package news

import "errors"

// ErrMissingFields is returned when a news item lacks titulo or contenido.
var ErrMissingFields = errors.New("titulo and contenido are required")

// ErrCreateNews is returned when news persistence fails.
var ErrCreateNews = errors.New("failed to create news item")

// ErrListNews is returned when news listing fails.
var ErrListNews = errors.New("failed to list news")
