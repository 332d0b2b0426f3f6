package mp3tag

import "fmt"

// Edit reads the tag from path, assigns value to the named field, and
// rewrites the file.
//
// field must be one of the six recognized names (see FieldNames);
// anything else returns *UnknownFieldError with the file untouched.
// Editing needs an existing readable tag, so an untagged file returns
// *NoTagError; use Write with a fresh Tag to create one.
//
// Edit accepts the same options as Write:
//
//	err := mp3tag.Edit("song.mp3", mp3tag.FieldTitle, "New Title",
//	    mp3tag.WithBackup(".bak"),
//	)
func Edit(path string, field FieldName, value string, opts ...WriteOption) error {
	tag, err := Read(path)
	if err != nil {
		return fmt.Errorf("read tags for editing: %w", err)
	}

	if err := tag.Set(field, value); err != nil {
		return err
	}

	return Write(path, tag, opts...)
}
