package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Ubicacion is a geographic point.
type Ubicacion struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Report is a citizen report pinned to a location, optionally with a photo.
// UsuarioID is an opaque reference: it is stored and compared verbatim and
// never validated against the users collection.
// BSON field names match the legacy collection layout.
type Report struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UsuarioID string        `bson:"usuarioId" json:"usuarioId"`
	Fecha     time.Time     `bson:"fecha" json:"fecha"`
	Ubicacion Ubicacion     `bson:"ubicacion" json:"ubicacion"`
	Imagen    string        `bson:"imagen,omitempty" json:"imagen,omitempty"`
}
