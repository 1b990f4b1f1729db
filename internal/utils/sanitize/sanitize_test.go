package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Corte de agua en el sector norte", "Corte de agua en el sector norte"},
		{"script stripped", "<script>alert('xss')</script>Hola", "Hola"},
		{"tags stripped with spacing", "<p>Hola <b>mundo</b></p>", "Hola mundo"},
		{"whitespace trimmed and collapsed", "  Hola    mundo  ", "Hola mundo"},
		{"newlines preserved", "linea uno\nlinea dos", "linea uno\nlinea dos"},
		{"nbsp normalized", "Hola mundo", "Hola mundo"},
		{"markdown preserved", "**importante** leer", "**importante** leer"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}
