package commandbar

// MaxPaletteItems is the maximum number of items shown in the command palette.
const MaxPaletteItems = 8

// MaxHistory bounds the number of remembered palette inputs.
const MaxHistory = 100

// Placeholder is shown while the palette input is empty.
const Placeholder = "Search commands, or type <query> !<letter>"
