package theme

// Built-in themes. Each carries 12 symbols so every difficulty tier deals a
// full deck.

var builtins = []Theme{
	{
		ID:    "animals",
		Title: "Animals",
		Symbols: []string{
			"🐶", "🐱", "🦊", "🐻", "🐼", "🐸",
			"🐵", "🐔", "🐧", "🦉", "🐢", "🦋",
		},
	},
	{
		ID:    "fruits",
		Title: "Fruits",
		Symbols: []string{
			"🍎", "🍌", "🍇", "🍓", "🍒", "🍑",
			"🍍", "🥝", "🍉", "🍋", "🍐", "🥥",
		},
	},
	{
		ID:    "faces",
		Title: "Faces",
		Symbols: []string{
			"😀", "😎", "😍", "🤔", "😴", "😭",
			"🤠", "🥳", "😇", "🤡", "👻", "🤖",
		},
	},
	{
		ID:    "sports",
		Title: "Sports",
		Symbols: []string{
			"⚽", "🏀", "🏈", "⚾", "🎾", "🏐",
			"🎱", "🏓", "🏸", "🥊", "⛳", "🎳",
		},
	},
}

func init() {
	for _, t := range builtins {
		Register(t)
	}
}
