package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Frame errors
	FrameMissingColumnsError
	FrameParseCSVError
	FrameWriteCSVError
	FrameDuplicateKeyError
	FrameShapeError

	// Download errors
	DownloadError
	DownloadStatusError

	// FishBase errors
	FishBaseFetchError
	FishBaseStatusError
	FishBaseDecodeError
	FishBaseIncompleteError

	// SQLite export errors
	SQLiteOpenError
	SQLiteExportError
)
