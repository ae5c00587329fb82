package sheet

import "errors"

var (
	// ErrFormat indicates a sheet file type that cannot be decoded.
	ErrFormat = errors.New("sheet: unsupported image format")

	// ErrSheetSize indicates a sheet that does not divide into equal cells.
	ErrSheetSize = errors.New("sheet: size does not match the character grid")
)
