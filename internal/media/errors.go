package media

import "fmt"

// InitializationError reports a subsystem, window or draw context that could
// not be created.
type InitializationError struct {
	Step string
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize %s: %v", e.Step, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// AssetLoadError reports a media asset that could not be opened or decoded.
type AssetLoadError struct {
	Asset string
	Path  string
	Err   error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Asset, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// PlaybackError reports looping playback that could not be started.
type PlaybackError struct {
	Err error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("start music: %v", e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }
