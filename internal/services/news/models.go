package news

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NewsItem is a published news entry. Immutable once stored.
// BSON field names match the legacy collection layout.
type NewsItem struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Titulo    string        `bson:"titulo" json:"titulo"`
	Resumen   string        `bson:"resumen,omitempty" json:"resumen,omitempty"`
	Contenido string        `bson:"contenido" json:"contenido"`
	Imagen    string        `bson:"imagen,omitempty" json:"imagen,omitempty"`
	Fecha     time.Time     `bson:"fecha" json:"fecha"`
}
