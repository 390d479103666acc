package schema

// Sprites is the image bundle of a Pokémon. The nested version groups are
// a fixed set of optional fields, their JSON keys are kept literally
// (official-artwork, generation-i, red-blue).
type Sprites struct {
	SpriteSet
	Other    *OtherSprites   `json:"other,omitempty"`
	Versions *VersionSprites `json:"versions,omitempty"`
}

// SpriteSet holds image URLs of one artwork style. Any of them can be
// absent.
type SpriteSet struct {
	BackDefault      *string `json:"back_default,omitempty"`
	BackFemale       *string `json:"back_female,omitempty"`
	BackShiny        *string `json:"back_shiny,omitempty"`
	BackShinyFemale  *string `json:"back_shiny_female,omitempty"`
	BackGray         *string `json:"back_gray,omitempty"`
	BackTransparent  *string `json:"back_transparent,omitempty"`
	FrontDefault     *string `json:"front_default,omitempty"`
	FrontFemale      *string `json:"front_female,omitempty"`
	FrontShiny       *string `json:"front_shiny,omitempty"`
	FrontShinyFemale *string `json:"front_shiny_female,omitempty"`
	FrontGray        *string `json:"front_gray,omitempty"`
	FrontTransparent *string `json:"front_transparent,omitempty"`
}

// OtherSprites are artworks that do not belong to a game version.
type OtherSprites struct {
	DreamWorld      *SpriteSet `json:"dream_world,omitempty"`
	Home            *SpriteSet `json:"home,omitempty"`
	OfficialArtwork *SpriteSet `json:"official-artwork,omitempty"`
	Showdown        *SpriteSet `json:"showdown,omitempty"`
}

// VersionSprites groups game sprites by generation.
type VersionSprites struct {
	GenerationI    *GenerationSprites `json:"generation-i,omitempty"`
	GenerationII   *GenerationSprites `json:"generation-ii,omitempty"`
	GenerationIII  *GenerationSprites `json:"generation-iii,omitempty"`
	GenerationIV   *GenerationSprites `json:"generation-iv,omitempty"`
	GenerationV    *GenerationSprites `json:"generation-v,omitempty"`
	GenerationVI   *GenerationSprites `json:"generation-vi,omitempty"`
	GenerationVII  *GenerationSprites `json:"generation-vii,omitempty"`
	GenerationVIII *GenerationSprites `json:"generation-viii,omitempty"`
}

// GenerationSprites lists every game of every generation. A generation
// only fills the games released in it.
type GenerationSprites struct {
	RedBlue                *GameSprites `json:"red-blue,omitempty"`
	Yellow                 *GameSprites `json:"yellow,omitempty"`
	Crystal                *GameSprites `json:"crystal,omitempty"`
	Gold                   *GameSprites `json:"gold,omitempty"`
	Silver                 *GameSprites `json:"silver,omitempty"`
	Emerald                *GameSprites `json:"emerald,omitempty"`
	FireredLeafgreen       *GameSprites `json:"firered-leafgreen,omitempty"`
	RubySapphire           *GameSprites `json:"ruby-sapphire,omitempty"`
	DiamondPearl           *GameSprites `json:"diamond-pearl,omitempty"`
	HeartgoldSoulsilver    *GameSprites `json:"heartgold-soulsilver,omitempty"`
	Platinum               *GameSprites `json:"platinum,omitempty"`
	BlackWhite             *GameSprites `json:"black-white,omitempty"`
	OmegarubyAlphasapphire *GameSprites `json:"omegaruby-alphasapphire,omitempty"`
	XY                     *GameSprites `json:"x-y,omitempty"`
	UltraSunUltraMoon      *GameSprites `json:"ultra-sun-ultra-moon,omitempty"`
	Icons                  *GameSprites `json:"icons,omitempty"`
}

// GameSprites are the sprites of one game. Black/White also ships
// animated sprites.
type GameSprites struct {
	SpriteSet
	Animated *SpriteSet `json:"animated,omitempty"`
}
