package types

import (
	"errors"
	"testing"
)

func TestTag_Set(t *testing.T) {
	tests := []struct {
		name  FieldName
		value string
		get   func(*Tag) Field
	}{
		{FieldTitle, "Test Song", func(tag *Tag) Field { return tag.Title }},
		{FieldArtist, "Test Artist", func(tag *Tag) Field { return tag.Artist }},
		{FieldAlbum, "Test Album", func(tag *Tag) Field { return tag.Album }},
		{FieldYear, "1999", func(tag *Tag) Field { return tag.Year }},
		{FieldComment, "a comment", func(tag *Tag) Field { return tag.Comment }},
		{FieldGenre, "Rock", func(tag *Tag) Field { return tag.Genre }},
	}

	for _, tc := range tests {
		t.Run(string(tc.name), func(t *testing.T) {
			tag := &Tag{}
			if err := tag.Set(tc.name, tc.value); err != nil {
				t.Fatalf("Set(%q) returned error: %v", tc.name, err)
			}

			got := tc.get(tag)
			if !got.Present {
				t.Fatalf("Set(%q) left field absent", tc.name)
			}
			if got.Value != tc.value {
				t.Errorf("field value = %q, want %q", got.Value, tc.value)
			}
		})
	}
}

func TestTag_Set_UnknownField(t *testing.T) {
	tag := &Tag{Title: NewField("keep me")}

	err := tag.Set("publisher", "Acme Records")
	if err == nil {
		t.Fatal("Set with unknown field should fail")
	}

	var unknownErr *UnknownFieldError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %T, want *UnknownFieldError", err)
	}
	if unknownErr.Name != "publisher" {
		t.Errorf("UnknownFieldError.Name = %q, want %q", unknownErr.Name, "publisher")
	}

	// The tag must be untouched after a rejected Set.
	if tag.Title.Value != "keep me" {
		t.Errorf("Title = %q after failed Set, want %q", tag.Title.Value, "keep me")
	}
}

func TestTag_Set_Overwrites(t *testing.T) {
	tag := &Tag{}
	if err := tag.Set(FieldTitle, "first"); err != nil {
		t.Fatal(err)
	}
	if err := tag.Set(FieldTitle, "second"); err != nil {
		t.Fatal(err)
	}

	if tag.Title.Value != "second" {
		t.Errorf("Title = %q, want %q (later Set wins)", tag.Title.Value, "second")
	}
}

func TestTag_Field(t *testing.T) {
	tag := &Tag{}
	tag.Set(FieldArtist, "Someone")

	got, ok := tag.Field(FieldArtist)
	if !ok {
		t.Fatal("Field(artist) reported unknown name")
	}
	if !got.Present || got.Value != "Someone" {
		t.Errorf("Field(artist) = %+v, want present %q", got, "Someone")
	}

	// A recognized but unset field is known, just absent.
	got, ok = tag.Field(FieldGenre)
	if !ok {
		t.Fatal("Field(genre) reported unknown name")
	}
	if got.Present {
		t.Errorf("Field(genre) = %+v, want absent", got)
	}

	if _, ok := tag.Field("bogus"); ok {
		t.Error("Field(bogus) = ok, want unknown")
	}
}

func TestField_PresentVsEmpty(t *testing.T) {
	var absent Field
	empty := NewField("")

	if absent.Present {
		t.Error("zero Field should be absent")
	}
	if !empty.Present {
		t.Error("NewField(\"\") should be present")
	}
	if absent == empty {
		t.Error("absent and present-but-empty fields must differ")
	}
}

func TestField_Or(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		fallback string
		want     string
	}{
		{"present", NewField("value"), "N/A", "value"},
		{"present empty", NewField(""), "N/A", ""},
		{"absent", Field{}, "N/A", "N/A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.field.Or(tc.fallback); got != tc.want {
				t.Errorf("Or(%q) = %q, want %q", tc.fallback, got, tc.want)
			}
		})
	}
}

func TestFieldNames_Order(t *testing.T) {
	want := []FieldName{
		FieldTitle, FieldArtist, FieldAlbum, FieldYear, FieldComment, FieldGenre,
	}

	got := FieldNames()
	if len(got) != len(want) {
		t.Fatalf("FieldNames() returned %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FieldNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
