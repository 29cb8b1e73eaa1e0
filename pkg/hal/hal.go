package hal

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MediaType es el content type HAL+JSON que se fuerza en todas las respuestas de la API.
const MediaType = "application/hal+json"

// Relaciones comunes.
const (
	RelSelf = "self"
)

// Link enlace HAL.
type Link struct {
	Href string `json:"href"`
}

// Links mapa relación -> enlace (se serializa como "_links").
type Links map[string]Link

// Add agrega (o reemplaza) una relación y devuelve el mismo mapa para encadenar.
func (l Links) Add(rel string, link Link) Links {
	l[rel] = link
	return l
}

// Collection recurso colección HAL: items embebidos bajo una relación más enlaces propios.
type Collection[T any] struct {
	Embedded map[string][]T `json:"_embedded"`
	Links    Links          `json:"_links"`
}

// NewCollection construye la colección. Un slice nil se serializa como [] para no romper clientes.
func NewCollection[T any](rel string, items []T, links Links) Collection[T] {
	if items == nil {
		items = []T{}
	}
	if links == nil {
		links = Links{}
	}
	return Collection[T]{
		Embedded: map[string][]T{rel: items},
		Links:    links,
	}
}

// LinkBuilder arma hrefs absolutos a partir de una URL base (esquema + host + prefijo opcional).
type LinkBuilder struct {
	base string
}

// NewLinkBuilder construye el builder. Se eliminan las barras finales de la base.
func NewLinkBuilder(base string) LinkBuilder {
	return LinkBuilder{base: strings.TrimRight(base, "/")}
}

// Base devuelve la URL base normalizada.
func (b LinkBuilder) Base() string {
	return b.base
}

// To construye un Link uniendo los segmentos de ruta a la base. Cualquier otro tipo se formatea con fmt.Sprint.
func (b LinkBuilder) To(segments ...any) Link {
	var sb strings.Builder
	sb.WriteString(b.base)
	for _, s := range segments {
		sb.WriteByte('/')
		switch v := s.(type) {
		case string:
			sb.WriteString(url.PathEscape(strings.Trim(v, "/")))
		case int64:
			sb.WriteString(strconv.FormatInt(v, 10))
		case int:
			sb.WriteString(strconv.Itoa(v))
		default:
			sb.WriteString(url.PathEscape(fmt.Sprint(v)))
		}
	}
	if len(segments) == 0 {
		sb.WriteByte('/')
	}
	return Link{Href: sb.String()}
}
