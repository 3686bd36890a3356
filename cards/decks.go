package cards

// Goal is the sum a player must reach with exactly three of their cards.
const Goal = 15

// Universe is the full set of cards available at the start of a game.
var Universe = NewSetFromCards([]Card{1, 2, 3, 4, 5, 6, 7, 8, 9})
