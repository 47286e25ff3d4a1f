package spotifydata

// Built-in fallbacks used when no playlist config or artist metadata
// file exists yet. Keeping a usable default set means the first fetch
// works out of the box; a real deployment maintains its own files.

func defaultPlaylistConfig() map[string]PlaylistConfig {
	return map[string]PlaylistConfig{
		"afrobeats-hits":       {ID: "25Y75ozl2aI0NylFToefO5", CuratorType: "Independent Curator", Label: "Afrobeats Hits"},
		"afrobeats-2026":       {ID: "5myeBzohhCVewaK2Thqmo5", CuratorType: "Independent Curator", Label: "Afrobeats 2026"},
		"ginja":                {ID: "4XtoXt98uSrnUbMz7JtWZk", CuratorType: "User-Generated", Label: "Ginja"},
		"viral-afrobeats":      {ID: "6ebiO5veMmbIWL5aGvalgQ", CuratorType: "Media Publisher", Label: "Viral Afrobeats"},
		"top-afrobeats-hits":   {ID: "0RChPss4CYl5LTfK0CRgOZ", CuratorType: "Media Publisher", Label: "Top Afrobeats Hits"},
		"afrobeats-gold":       {ID: "1UFBYLsMwB2q0EypxWdBLO", CuratorType: "Independent Curator", Label: "Afrobeats Gold"},
		"amapiano-2025":        {ID: "4Ymf8eaPQGT7HMTymoX82f", CuratorType: "Independent Curator", Label: "Amapiano 2025"},
		"top-picks-afrobeats":  {ID: "1ynsIf7ZgpEFxIvuDBlUcK", CuratorType: "Media Publisher", Label: "Top Picks: Afrobeats"},
		"afrobeats-hits-indie": {ID: "2DfNaw9Z1nuddjI6NczTXS", CuratorType: "Independent Curator", Label: "Afrobeats Hits (Indie)"},
	}
}

func defaultArtistMetadata() map[string]ArtistInfo {
	nigeria := ArtistInfo{Country: "Nigeria", RegionGroup: "Nigeria"}
	ghana := ArtistInfo{Country: "Ghana", RegionGroup: "Ghana"}

	return map[string]ArtistInfo{
		"Rema":        nigeria,
		"Ayra Starr":  nigeria,
		"Burna Boy":   nigeria,
		"Wizkid":      nigeria,
		"Davido":      nigeria,
		"Tems":        nigeria,
		"Omah Lay":    nigeria,
		"CKay":        nigeria,
		"Lojay":       nigeria,
		"Fireboy DML": nigeria,
		"Joeboy":      nigeria,
		"Oxlade":      nigeria,
		"Sarz":        nigeria,
		"Victony":     nigeria,
		"Teni":        nigeria,
		"Tiwa Savage": nigeria,
		"Kizz Daniel": nigeria,
		"Mr Eazi":     nigeria,
		"Yemi Alade":  nigeria,

		"Black Sherif": ghana,
		"King Promise": ghana,
		"Stonebwoy":    ghana,
		"Kuami Eugene": ghana,
		"Lasmid":       ghana,
		"Shatta Wale":  ghana,
		"Amaarae":      {Country: "Ghana", RegionGroup: "Ghana", Diaspora: true},

		"Tyla":        {Country: "South Africa", RegionGroup: "Southern Africa"},
		"Rotimi":      {Country: "United States", RegionGroup: "US Diaspora", Diaspora: true},
		"Chris Brown": {Country: "United States", RegionGroup: "US Diaspora", Diaspora: true},
		"Don Toliver": {Country: "United States", RegionGroup: "US Diaspora", Diaspora: true},
		"Ed Sheeran":  {Country: "United Kingdom", RegionGroup: "UK Collaborator", Diaspora: true},
		"Mack H.D":    {Country: "Canada", RegionGroup: "Diaspora Collective", Diaspora: true},
	}
}
