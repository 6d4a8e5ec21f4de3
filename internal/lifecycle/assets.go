package lifecycle

import (
	"github.com/vovakirdan/bounce/internal/media"
)

// Asset paths, relative to the working directory.
const (
	IconPath        = "images/Cpp-logo.png"
	BackgroundPath  = "images/background.png"
	FontPath        = "fonts/freesansbold.ttf"
	ActionSoundPath = "sounds/Cpp.ogg"
	BounceSoundPath = "sounds/SDL.ogg"
	MusicPath       = "music/freesoftwaresong-8bit.ogg"
)

// AssetInfo describes one file the program reads at startup.
type AssetInfo struct {
	Name  string
	Path  string
	Kind  string
	Audio bool // Skipped when audio is disabled
}

// Manifest lists the assets in load order.
var Manifest = []AssetInfo{
	{Name: "icon", Path: IconPath, Kind: "image"},
	{Name: "background", Path: BackgroundPath, Kind: "image"},
	{Name: "font", Path: FontPath, Kind: "font"},
	{Name: "action-sound", Path: ActionSoundPath, Kind: "sound", Audio: true},
	{Name: "bounce-sound", Path: BounceSoundPath, Kind: "sound", Audio: true},
	{Name: "music", Path: MusicPath, Kind: "music", Audio: true},
}

// Assets holds the decoded media a session draws and plays. The lifecycle
// manager owns every value; callers must not keep them past Teardown.
type Assets struct {
	Background media.Texture

	// Text is the glyph atlas rendered once from the fixed string.
	Text         media.Texture
	TextW, TextH float32

	// Sprite is the keyboard-driven image, created from the window icon.
	Sprite           media.Texture
	SpriteW, SpriteH float32

	// Audio assets are nil when audio is disabled.
	ActionSound media.Sound
	BounceSound media.Sound
	Music       media.Music
}
