package mp3tag

import "github.com/sharananure/MP3TagEditor/internal/types"

// Tag is an alias to types.Tag.
// Re-exporting from internal/types to maintain public API.
type Tag = types.Tag

// Field is an alias to types.Field.
// Re-exporting from internal/types to maintain public API.
type Field = types.Field

// FieldName is an alias to types.FieldName.
// Re-exporting from internal/types to maintain public API.
type FieldName = types.FieldName

// The six recognized field names, accepted by Tag.Set, Tag.Field, and Edit.
const (
	FieldTitle   = types.FieldTitle
	FieldArtist  = types.FieldArtist
	FieldAlbum   = types.FieldAlbum
	FieldYear    = types.FieldYear
	FieldComment = types.FieldComment
	FieldGenre   = types.FieldGenre
)

// NewField returns a present Field holding value. The zero Field is absent.
func NewField(value string) Field {
	return types.NewField(value)
}

// FieldNames returns the six recognized field names in display and
// on-disk emission order: title, artist, album, year, comment, genre.
func FieldNames() []FieldName {
	return types.FieldNames()
}
