package types

// FieldName identifies one of the six recognized tag fields.
//
// Field names are the canonical lowercase forms used by the edit
// operation and the command line. Anything else is rejected with
// *UnknownFieldError.
type FieldName string

// The six recognized field names, in the order frames are written.
const (
	FieldTitle   FieldName = "title"
	FieldArtist  FieldName = "artist"
	FieldAlbum   FieldName = "album"
	FieldYear    FieldName = "year"
	FieldComment FieldName = "comment"
	FieldGenre   FieldName = "genre"
)

// FieldNames returns the recognized field names in canonical order.
func FieldNames() []FieldName {
	return []FieldName{
		FieldTitle,
		FieldArtist,
		FieldAlbum,
		FieldYear,
		FieldComment,
		FieldGenre,
	}
}

// Field is one optional text value in a Tag.
//
// The zero value means "absent": no frame was seen for this field and the
// writer emits nothing for it. Present distinguishes a missing frame from
// a frame carrying empty content; the two are not interchangeable.
type Field struct {
	// Value is the field's text. Meaningful only when Present is true.
	Value string

	// Present reports whether the field holds a value at all.
	Present bool
}

// NewField returns a present Field holding value.
func NewField(value string) Field {
	return Field{Value: value, Present: true}
}

// Or returns the field's value, or fallback when the field is absent.
//
// Useful for display code:
//
//	fmt.Println("Title:", tag.Title.Or("N/A"))
func (f Field) Or(fallback string) string {
	if f.Present {
		return f.Value
	}
	return fallback
}

// Tag is the in-memory representation of one ID3v2 tag.
//
// A Tag is either populated by the reader as it discovers frames, or built
// from scratch by a caller for a fresh write. Each present field owns its
// string independently; mutating one field never affects another.
type Tag struct {
	// Version is the textual tag version (e.g. "ID3v2.3"), derived from
	// the header's version bytes on read. Empty for records built from
	// scratch; the writer does not consume it.
	Version string

	Title   Field
	Artist  Field
	Album   Field
	Year    Field
	Comment Field
	Genre   Field
}

// Set assigns value to the named field, replacing any previous value.
//
// Unrecognized names return *UnknownFieldError and leave the tag unchanged.
func (t *Tag) Set(name FieldName, value string) error {
	f := t.fieldByName(name)
	if f == nil {
		return &UnknownFieldError{Name: string(name)}
	}
	*f = NewField(value)
	return nil
}

// Field returns the named field. The second result is false for
// unrecognized names.
func (t *Tag) Field(name FieldName) (Field, bool) {
	f := t.fieldByName(name)
	if f == nil {
		return Field{}, false
	}
	return *f, true
}

// fieldByName maps a canonical name to its field. Nil for unknown names.
func (t *Tag) fieldByName(name FieldName) *Field {
	switch name {
	case FieldTitle:
		return &t.Title
	case FieldArtist:
		return &t.Artist
	case FieldAlbum:
		return &t.Album
	case FieldYear:
		return &t.Year
	case FieldComment:
		return &t.Comment
	case FieldGenre:
		return &t.Genre
	default:
		return nil
	}
}
